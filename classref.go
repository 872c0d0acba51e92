package beandef

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/beankit/beandef/internal/typeutil"
)

// TypeResolver resolves a declared class name into a runtime type. It stands
// in for classloader lookup: Go has no global name-to-type table, so callers
// supply the mapping for the types their configuration names.
type TypeResolver interface {
	ResolveType(name string) (reflect.Type, error)
}

// TypeConverter converts a configured value into the target type expected by
// a constructor parameter or property. It is consumed by collection factory
// collaborators outside this package, never by the merge engine itself.
type TypeConverter interface {
	ConvertIfNecessary(value any, targetType reflect.Type) (any, error)
}

// ClassReference identifies a bean's implementation type: either unresolved,
// carrying only a declared type name, or resolved, carrying the runtime type.
// The explicit two-state form replaces a single untyped slot so "not yet
// resolved" is an answerable question rather than a runtime type error.
type ClassReference struct {
	name string
	typ  reflect.Type
}

// ClassReferenceFor creates a resolved reference for the given runtime type.
func ClassReferenceFor(t reflect.Type) ClassReference {
	return ClassReference{typ: t}
}

// ClassReferenceNamed creates an unresolved reference for a declared name.
func ClassReferenceNamed(name string) ClassReference {
	return ClassReference{name: name}
}

// IsResolved reports whether the reference carries a runtime type.
func (cr ClassReference) IsResolved() bool { return cr.typ != nil }

// IsEmpty reports whether the reference carries neither a name nor a type.
func (cr ClassReference) IsEmpty() bool { return cr.typ == nil && cr.name == "" }

// Name returns the declared or derived class name. For a resolved reference
// this is the runtime type's qualified name.
func (cr ClassReference) Name() string {
	if cr.typ != nil {
		return typeutil.FullName(cr.typ)
	}
	return cr.name
}

// Type returns the resolved runtime type. Querying an unresolved reference
// is a caller ordering bug and yields an IllegalStateError, distinct from a
// missing type.
func (cr ClassReference) Type() (reflect.Type, error) {
	if cr.typ != nil {
		return cr.typ, nil
	}
	if cr.name == "" {
		return nil, IllegalStateError{Msg: ErrNoClassSpecified.Error()}
	}
	return nil, IllegalStateError{
		Msg: fmt.Sprintf("bean class name %q has not been resolved into an actual type", cr.name),
	}
}

// Resolve resolves the declared name through the given resolver and returns
// the resolved reference. A reference that is already resolved is returned
// unchanged; an empty reference resolves to itself with a nil type.
func (cr ClassReference) Resolve(resolver TypeResolver) (ClassReference, error) {
	if cr.typ != nil || cr.name == "" {
		return cr, nil
	}
	t, err := resolver.ResolveType(cr.name)
	if err != nil {
		return cr, err
	}
	return ClassReference{typ: t}, nil
}

// TypeRegistry is a map-backed TypeResolver. Types register under their
// String() form, their package-path-qualified name, and any explicit names.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

var _ TypeResolver = (*TypeRegistry)(nil)

// NewTypeRegistry creates an empty type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]reflect.Type)}
}

// Register registers a type under its String() form and its package-path
// qualified name.
func (r *TypeRegistry) Register(t reflect.Type) {
	if t == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t.String()] = t
	r.types[typeutil.FullName(t)] = t
}

// RegisterName registers a type under an explicit name.
func (r *TypeRegistry) RegisterName(name string, t reflect.Type) {
	if name == "" || t == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = t
}

// ResolveType implements TypeResolver.
func (r *TypeRegistry) ResolveType(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.types[name]; ok {
		return t, nil
	}
	return nil, TypeNotFoundError{TypeName: name}
}
