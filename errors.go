package beandef

import (
	"errors"
	"fmt"
	"reflect"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// These are base errors that should be wrapped in typed errors when returned.
// Never return these directly to users - always wrap them with context.

var (
	// Registration errors.
	ErrDefinitionNil = errors.New("bean definition cannot be nil")
	ErrBeanNameEmpty = errors.New("bean name cannot be empty")
	ErrAliasEmpty    = errors.New("alias cannot be empty")

	// Argument registration errors.
	ErrValueHolderNil = errors.New("value holder cannot be nil")
	ErrNegativeIndex  = errors.New("argument index must not be negative")

	// Definition state errors.
	ErrNoClassSpecified       = errors.New("no bean class specified on bean definition")
	ErrRootParentName         = errors.New("root bean definition cannot be changed into a child definition with a parent reference")
	ErrFactoryMethodNameEmpty = errors.New("factory method name cannot be empty")
)

var (
	_ error = PreconditionError{}
	_ error = ValidationError{}
	_ error = IllegalStateError{}
	_ error = TypeNotFoundError{}
	_ error = IncompatibleMergeError{}
	_ error = NoSuchDefinitionError{}
	_ error = DuplicateDefinitionError{}
	_ error = AliasError{}
)

// ========================================
// Typed Errors for Rich Context
// ========================================
// Always use these typed errors instead of fmt.Errorf() or errors.New()
// for domain-specific errors. Wrap sentinel errors with these types.

// PreconditionError indicates a caller violated an operation's contract,
// for example registering an argument at a negative index. The violation is
// fatal to the caller and is never retried.
type PreconditionError struct {
	Cause  error
	Detail string
}

func (e PreconditionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("precondition violated: %v: %s", e.Cause, e.Detail)
	}
	return fmt.Sprintf("precondition violated: %v", e.Cause)
}

func (e PreconditionError) Unwrap() error { return e.Cause }

// ValidationError indicates an invalid bean definition configuration,
// surfaced when Validate is invoked. It is fatal to bringing up the
// definition it names.
type ValidationError struct {
	BeanClassName string
	Cause         error
}

func (e ValidationError) Error() string {
	if e.BeanClassName != "" {
		return fmt.Sprintf("invalid bean definition with class %q: %v", e.BeanClassName, e.Cause)
	}
	return fmt.Sprintf("invalid bean definition: %v", e.Cause)
}

func (e ValidationError) Unwrap() error { return e.Cause }

// IllegalStateError indicates a caller ordering bug, such as querying a
// definition's class before the class name has been resolved. It is distinct
// from TypeNotFoundError, which indicates a genuinely missing type.
type IllegalStateError struct {
	Msg string
}

func (e IllegalStateError) Error() string { return e.Msg }

// TypeNotFoundError indicates a declared class name could not be resolved
// into a runtime type.
type TypeNotFoundError struct {
	TypeName string
}

func (e TypeNotFoundError) Error() string {
	return fmt.Sprintf("type %q not found", e.TypeName)
}

// IncompatibleMergeError indicates a mergeable value was asked to merge with
// a parent value of an incompatible type.
type IncompatibleMergeError struct {
	Expected reflect.Type
	Actual   any
}

func (e IncompatibleMergeError) Error() string {
	return fmt.Sprintf("cannot merge with object of type %T: expected %s", e.Actual, e.Expected)
}

// NoSuchDefinitionError indicates no bean definition is registered under the
// requested name.
type NoSuchDefinitionError struct {
	Name string
}

func (e NoSuchDefinitionError) Error() string {
	return fmt.Sprintf("no bean definition registered with name %q", e.Name)
}

// DuplicateDefinitionError indicates a bean definition is already registered
// under the given name and overriding is not allowed.
type DuplicateDefinitionError struct {
	Name string
}

func (e DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("bean definition %q already registered and overriding is not allowed", e.Name)
}

// AliasError indicates an invalid alias registration, such as an alias that
// would form a circular reference.
type AliasError struct {
	Name  string
	Alias string
	Cause error
}

func (e AliasError) Error() string {
	return fmt.Sprintf("cannot register alias %q for name %q: %v", e.Alias, e.Name, e.Cause)
}

func (e AliasError) Unwrap() error { return e.Cause }
