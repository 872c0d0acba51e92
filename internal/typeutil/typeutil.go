// Package typeutil provides cached reflection helpers for matching declared
// type names against runtime types and for inspecting method sets.
package typeutil

import (
	"reflect"
	"strings"
	"sync"
)

// nameCache caches computed type names to avoid repeated string building
// for the same types during argument resolution.
var nameCache sync.Map // map[reflect.Type]*typeNames

type typeNames struct {
	full  string
	short string
	str   string
}

func namesFor(t reflect.Type) *typeNames {
	if cached, ok := nameCache.Load(t); ok {
		return cached.(*typeNames)
	}
	names := &typeNames{
		full:  FullName(t),
		short: ShortName(t),
		str:   t.String(),
	}
	actual, _ := nameCache.LoadOrStore(t, names)
	return actual.(*typeNames)
}

// MatchesTypeName reports whether the given runtime type matches a declared
// type name. A declared name matches the type's String() form ("*pkg.Foo"),
// its package-path-qualified form ("example.com/pkg.Foo"), or its short form
// without the package qualifier ("*Foo").
func MatchesTypeName(t reflect.Type, name string) bool {
	if t == nil || name == "" {
		return false
	}
	names := namesFor(t)
	return name == names.str || name == names.full || name == names.short
}

// FullName returns the package-path-qualified name of a type, preserving
// pointer and slice markers. Unnamed types fall back to String().
func FullName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + FullName(t.Elem())
	case reflect.Slice:
		return "[]" + FullName(t.Elem())
	}
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// ShortName returns the type name without any package qualifier, preserving
// pointer and slice markers.
func ShortName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + ShortName(t.Elem())
	case reflect.Slice:
		return "[]" + ShortName(t.Elem())
	}
	s := t.String()
	if idx := strings.LastIndex(s, "."); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// IsAssignableValue reports whether the given value can be assigned to the
// target type. A nil value is assignable only to nilable kinds.
func IsAssignableValue(target reflect.Type, value any) bool {
	if target == nil {
		return false
	}
	if value == nil {
		return CanBeNil(target)
	}
	return reflect.TypeOf(value).AssignableTo(target)
}

// CanBeNil reports whether the zero value of the given type is nil.
func CanBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// MethodCountForName returns the number of methods with the given name
// reachable on t. The count includes methods promoted from embedded fields:
// a method defined directly (or promoted unambiguously) counts once, while a
// name reachable through multiple embedded fields counts once per origin.
// Ambiguously promoted methods never appear in a type's method set, so the
// embedded fields are inspected explicitly when the method set has no match.
func MethodCountForName(t reflect.Type, name string) int {
	if t == nil || name == "" {
		return 0
	}
	if count := methodSetCount(t, name); count > 0 {
		return count
	}
	elem := t
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return 0
	}
	count := 0
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		if !field.Anonymous {
			continue
		}
		count += MethodCountForName(field.Type, name)
	}
	return count
}

func methodSetCount(t reflect.Type, name string) int {
	count := 0
	for i := 0; i < t.NumMethod(); i++ {
		if t.Method(i).Name == name {
			count++
		}
	}
	if count == 0 && t.Kind() != reflect.Pointer {
		return methodSetCount(reflect.PointerTo(t), name)
	}
	return count
}

// FormatType returns a human-readable name for a type, for error messages.
func FormatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
