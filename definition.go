package beandef

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/beankit/beandef/internal/typeutil"
)

// Scope identifiers. Custom scope names are allowed; the derived singleton
// and prototype flags only recognize the two standard scopes.
const (
	// ScopeDefault is the empty scope, equivalent to singleton unless an
	// enclosing context says otherwise.
	ScopeDefault = ""

	// ScopeSingleton shares a single instance per container.
	ScopeSingleton = "singleton"

	// ScopePrototype creates a new instance for every request.
	ScopePrototype = "prototype"
)

// BeanDefinition describes how to construct and configure one managed
// object: its class, scope, lifecycle flags, wiring policy, constructor
// arguments, and property values. Definitions are value objects: they can be
// cloned, merged onto a parent copy, and compared by configuration content.
//
// The two concrete variants are RootBeanDefinition (fully merged, parent-less,
// runtime-active) and GenericBeanDefinition (user-authored, possibly naming a
// parent to merge from).
type BeanDefinition interface {
	AttributeAccessor

	// ParentName returns the name of the parent definition this definition
	// inherits from, or "" if none.
	ParentName() string

	// SetParentName assigns a parent definition name. A root definition
	// rejects any non-empty parent name with a precondition error.
	SetParentName(name string) error

	// ClassName returns the declared or derived class name, or "" if the
	// definition is factory-method-only.
	ClassName() string

	// HasClass reports whether the class reference holds a resolved runtime
	// type rather than a name.
	HasClass() bool

	// Class returns the resolved runtime type. Querying before resolution is
	// a caller ordering bug and yields an IllegalStateError.
	Class() (reflect.Type, error)

	Scope() string
	IsSingleton() bool
	IsPrototype() bool
	IsAbstract() bool
	IsLazyInit() bool
	Role() Role

	FactoryBeanName() string
	FactoryMethodName() string

	ConstructorArgumentValues() *ConstructorArgumentValues
	PropertyValues() *PropertyValues

	Source() any
	SetSource(source any)

	// OverrideFrom layers the other definition's settings onto this one,
	// which is presumed to be a fresh copy of a parent. See the per-field
	// policies in the override table.
	OverrideFrom(other BeanDefinition) error

	// ApplyDefaults applies container-level defaults to this definition.
	ApplyDefaults(defaults *BeanDefinitionDefaults)

	// Validate checks the definition's configuration for consistency.
	Validate() error

	// Clone creates an independent deep copy of this definition.
	Clone() BeanDefinition

	// Equals compares two definitions of the same variant by configuration
	// content.
	Equals(other BeanDefinition) bool

	// ContentHash returns a hash over a stable subset of the configuration:
	// class name, scope, argument values, property values, and factory
	// linkage. Equal definitions hash equal.
	ContentHash() uint64

	String() string

	// core exposes the shared definition state to the merge and copy
	// machinery. Definition variants live in this package.
	core() *definitionCore
}

// DescriptiveResource is an opaque origin marker carrying only a description
// of where a definition came from.
type DescriptiveResource struct {
	Description string
}

// BeanDefinitionResource marks a definition as originating from another
// definition, for example the pre-decoration original.
type BeanDefinitionResource struct {
	Definition BeanDefinition
}

// definitionCore holds the state shared by every bean definition variant.
type definitionCore struct {
	attributeAccessor

	class           ClassReference
	scope           string
	singleton       bool
	prototype       bool
	abstractFlag    bool
	lazyInit        bool
	autowireMode    AutowireMode
	dependencyCheck DependencyCheck
	dependsOn       []string

	autowireCandidate bool
	primary           bool
	qualifierNames    []string
	qualifiers        map[string]*AutowireCandidateQualifier

	nonPublicAccessAllowed       bool
	lenientConstructorResolution bool

	constructorArgs *ConstructorArgumentValues
	propertyValues  *PropertyValues
	methodOverrides *MethodOverrides

	factoryBeanName   string
	factoryMethodName string

	initMethodName       string
	destroyMethodName    string
	enforceInitMethod    bool
	enforceDestroyMethod bool

	synthetic   bool
	role        Role
	description string
	resource    any
}

func newDefinitionCore() definitionCore {
	return definitionCore{
		scope:                        ScopeDefault,
		singleton:                    true,
		autowireCandidate:            true,
		qualifiers:                   make(map[string]*AutowireCandidateQualifier),
		nonPublicAccessAllowed:       true,
		lenientConstructorResolution: true,
		constructorArgs:              NewConstructorArgumentValues(),
		propertyValues:               NewPropertyValues(),
		methodOverrides:              NewMethodOverrides(),
		enforceInitMethod:            true,
		enforceDestroyMethod:         true,
	}
}

func (d *definitionCore) core() *definitionCore { return d }

// DefinitionOption configures a newly created bean definition.
type DefinitionOption func(*definitionCore)

// WithClass sets the resolved implementation type.
func WithClass(t reflect.Type) DefinitionOption {
	return func(d *definitionCore) { d.SetClass(t) }
}

// WithClassName sets the declared, not yet resolved class name.
func WithClassName(name string) DefinitionOption {
	return func(d *definitionCore) { d.SetClassName(name) }
}

// WithScope sets the scope identifier.
func WithScope(scope string) DefinitionOption {
	return func(d *definitionCore) { d.SetScope(scope) }
}

// WithAutowireMode sets the autowiring policy.
func WithAutowireMode(mode AutowireMode) DefinitionOption {
	return func(d *definitionCore) { d.autowireMode = mode }
}

// WithDependencyCheck sets the dependency check policy.
func WithDependencyCheck(check DependencyCheck) DefinitionOption {
	return func(d *definitionCore) { d.dependencyCheck = check }
}

// WithFactoryMethod sets the factory linkage: the bean to call the factory
// method on (empty for a static factory) and the factory method name.
func WithFactoryMethod(factoryBeanName, factoryMethodName string) DefinitionOption {
	return func(d *definitionCore) {
		d.factoryBeanName = factoryBeanName
		d.factoryMethodName = factoryMethodName
	}
}

// WithLazyInit sets the lazy initialization flag.
func WithLazyInit(lazy bool) DefinitionOption {
	return func(d *definitionCore) { d.lazyInit = lazy }
}

// WithConstructorArgumentValues sets the constructor argument registry.
func WithConstructorArgumentValues(cav *ConstructorArgumentValues) DefinitionOption {
	return func(d *definitionCore) { d.SetConstructorArgumentValues(cav) }
}

// WithPropertyValues sets the property value registry.
func WithPropertyValues(pvs *PropertyValues) DefinitionOption {
	return func(d *definitionCore) { d.SetPropertyValues(pvs) }
}

// ----------------------------------------------------------------------
// Class reference
// ----------------------------------------------------------------------

// SetClass sets the resolved implementation type.
func (d *definitionCore) SetClass(t reflect.Type) { d.class = ClassReferenceFor(t) }

// SetClassName sets the declared, not yet resolved class name.
func (d *definitionCore) SetClassName(name string) { d.class = ClassReferenceNamed(name) }

// ClassName returns the declared or derived class name.
func (d *definitionCore) ClassName() string { return d.class.Name() }

// HasClass reports whether the class reference holds a resolved type.
func (d *definitionCore) HasClass() bool { return d.class.IsResolved() }

// Class returns the resolved runtime type, or an IllegalStateError when the
// reference is unresolved or absent.
func (d *definitionCore) Class() (reflect.Type, error) { return d.class.Type() }

// ClassReference returns the class reference as-is.
func (d *definitionCore) ClassReference() ClassReference { return d.class }

// ResolveClass resolves the declared class name through the given resolver
// and caches the resolved type on the definition. A definition without a
// class name resolves to nil.
func (d *definitionCore) ResolveClass(resolver TypeResolver) (reflect.Type, error) {
	if d.class.IsEmpty() {
		return nil, nil
	}
	resolved, err := d.class.Resolve(resolver)
	if err != nil {
		return nil, err
	}
	d.class = resolved
	return resolved.typ, nil
}

// ----------------------------------------------------------------------
// Scope and lifecycle flags
// ----------------------------------------------------------------------

// SetScope sets the scope identifier and recomputes the derived singleton
// and prototype flags, keeping them consistent with the scope.
func (d *definitionCore) SetScope(scope string) {
	d.scope = scope
	d.singleton = scope == ScopeSingleton || scope == ScopeDefault
	d.prototype = scope == ScopePrototype
}

// Scope returns the scope identifier.
func (d *definitionCore) Scope() string { return d.scope }

// IsSingleton reports whether a single shared instance is returned for all
// requests. Derived from the scope.
func (d *definitionCore) IsSingleton() bool { return d.singleton }

// IsPrototype reports whether an independent instance is created per
// request. Derived from the scope.
func (d *definitionCore) IsPrototype() bool { return d.prototype }

// SetAbstract marks this definition as a pure template that cannot be
// instantiated itself.
func (d *definitionCore) SetAbstract(abstract bool) { d.abstractFlag = abstract }

// IsAbstract reports whether this definition is a pure template.
func (d *definitionCore) IsAbstract() bool { return d.abstractFlag }

// SetLazyInit sets the lazy initialization flag.
func (d *definitionCore) SetLazyInit(lazy bool) { d.lazyInit = lazy }

// IsLazyInit reports whether the bean is initialized on first request rather
// than at container startup.
func (d *definitionCore) IsLazyInit() bool { return d.lazyInit }

// ----------------------------------------------------------------------
// Wiring policy
// ----------------------------------------------------------------------

// SetAutowireMode sets the autowiring policy.
func (d *definitionCore) SetAutowireMode(mode AutowireMode) { d.autowireMode = mode }

// AutowireMode returns the configured autowiring policy, with the autodetect
// marker unresolved.
func (d *definitionCore) AutowireMode() AutowireMode { return d.autowireMode }

// ResolvedAutowireMode resolves the autodetect marker at query time: with a
// resolved class, zero-value construction is always available, so by-type
// wiring is preferred; otherwise constructor wiring applies. The stored mode
// is never rewritten.
func (d *definitionCore) ResolvedAutowireMode() AutowireMode {
	if d.autowireMode != AutowireAutodetect {
		return d.autowireMode
	}
	if d.class.IsResolved() {
		return AutowireByType
	}
	return AutowireConstructor
}

// SetDependencyCheck sets the dependency check policy.
func (d *definitionCore) SetDependencyCheck(check DependencyCheck) { d.dependencyCheck = check }

// DependencyCheck returns the dependency check policy.
func (d *definitionCore) DependencyCheck() DependencyCheck { return d.dependencyCheck }

// SetDependsOn sets the names of beans this bean depends on being
// initialized first.
func (d *definitionCore) SetDependsOn(names ...string) { d.dependsOn = names }

// DependsOn returns the names of beans this bean depends on.
func (d *definitionCore) DependsOn() []string { return d.dependsOn }

// SetAutowireCandidate sets whether this bean is a candidate for satisfying
// other beans' autowired dependencies.
func (d *definitionCore) SetAutowireCandidate(candidate bool) { d.autowireCandidate = candidate }

// IsAutowireCandidate reports whether this bean is an autowire candidate.
func (d *definitionCore) IsAutowireCandidate() bool { return d.autowireCandidate }

// SetPrimary sets whether this bean wins ties among multiple candidates.
func (d *definitionCore) SetPrimary(primary bool) { d.primary = primary }

// IsPrimary reports whether this bean wins candidate ties.
func (d *definitionCore) IsPrimary() bool { return d.primary }

// AddQualifier registers a qualifier, keyed by its type name. A qualifier
// with an already registered type name replaces the previous one.
func (d *definitionCore) AddQualifier(qualifier *AutowireCandidateQualifier) {
	if qualifier == nil {
		return
	}
	if _, ok := d.qualifiers[qualifier.TypeName()]; !ok {
		d.qualifierNames = append(d.qualifierNames, qualifier.TypeName())
	}
	d.qualifiers[qualifier.TypeName()] = qualifier
}

// HasQualifier reports whether a qualifier with the given type name is
// registered.
func (d *definitionCore) HasQualifier(typeName string) bool {
	_, ok := d.qualifiers[typeName]
	return ok
}

// Qualifier returns the qualifier registered for the given type name, or nil.
func (d *definitionCore) Qualifier(typeName string) *AutowireCandidateQualifier {
	return d.qualifiers[typeName]
}

// Qualifiers returns all registered qualifiers in registration order.
func (d *definitionCore) Qualifiers() []*AutowireCandidateQualifier {
	qualifiers := make([]*AutowireCandidateQualifier, 0, len(d.qualifierNames))
	for _, name := range d.qualifierNames {
		qualifiers = append(qualifiers, d.qualifiers[name])
	}
	return qualifiers
}

func (d *definitionCore) copyQualifiersFrom(other *definitionCore) {
	for _, name := range other.qualifierNames {
		d.AddQualifier(other.qualifiers[name].Copy())
	}
}

func (d *definitionCore) qualifiersEqual(other *definitionCore) bool {
	if len(d.qualifiers) != len(other.qualifiers) {
		return false
	}
	for name, qualifier := range d.qualifiers {
		if !qualifier.Equals(other.qualifiers[name]) {
			return false
		}
	}
	return true
}

// SetNonPublicAccessAllowed sets whether non-exported members may be used to
// construct and configure the bean.
func (d *definitionCore) SetNonPublicAccessAllowed(allowed bool) { d.nonPublicAccessAllowed = allowed }

// IsNonPublicAccessAllowed reports whether non-exported member access is
// allowed.
func (d *definitionCore) IsNonPublicAccessAllowed() bool { return d.nonPublicAccessAllowed }

// SetLenientConstructorResolution sets whether constructor resolution prefers
// the closest match (lenient) over requiring an exact match.
func (d *definitionCore) SetLenientConstructorResolution(lenient bool) {
	d.lenientConstructorResolution = lenient
}

// IsLenientConstructorResolution reports whether constructor resolution is
// lenient.
func (d *definitionCore) IsLenientConstructorResolution() bool {
	return d.lenientConstructorResolution
}

// ----------------------------------------------------------------------
// Values and overrides
// ----------------------------------------------------------------------

// SetConstructorArgumentValues replaces the constructor argument registry.
// A nil registry installs an empty one.
func (d *definitionCore) SetConstructorArgumentValues(cav *ConstructorArgumentValues) {
	if cav == nil {
		cav = NewConstructorArgumentValues()
	}
	d.constructorArgs = cav
}

// ConstructorArgumentValues returns the constructor argument registry.
func (d *definitionCore) ConstructorArgumentValues() *ConstructorArgumentValues {
	return d.constructorArgs
}

// HasConstructorArgumentValues reports whether any constructor arguments are
// registered.
func (d *definitionCore) HasConstructorArgumentValues() bool {
	return !d.constructorArgs.IsEmpty()
}

// SetPropertyValues replaces the property value registry. A nil registry
// installs an empty one.
func (d *definitionCore) SetPropertyValues(pvs *PropertyValues) {
	if pvs == nil {
		pvs = NewPropertyValues()
	}
	d.propertyValues = pvs
}

// PropertyValues returns the property value registry.
func (d *definitionCore) PropertyValues() *PropertyValues { return d.propertyValues }

// SetMethodOverrides replaces the method override set. A nil set installs an
// empty one.
func (d *definitionCore) SetMethodOverrides(overrides *MethodOverrides) {
	if overrides == nil {
		overrides = NewMethodOverrides()
	}
	d.methodOverrides = overrides
}

// MethodOverrides returns the method override set.
func (d *definitionCore) MethodOverrides() *MethodOverrides { return d.methodOverrides }

// ----------------------------------------------------------------------
// Factory linkage and lifecycle methods
// ----------------------------------------------------------------------

// SetFactoryBeanName sets the name of the bean to call the factory method
// on, or "" for a static factory method on the bean class.
func (d *definitionCore) SetFactoryBeanName(name string) { d.factoryBeanName = name }

// FactoryBeanName returns the factory bean name.
func (d *definitionCore) FactoryBeanName() string { return d.factoryBeanName }

// SetFactoryMethodName sets the name of the factory method producing the
// bean instance.
func (d *definitionCore) SetFactoryMethodName(name string) { d.factoryMethodName = name }

// FactoryMethodName returns the factory method name.
func (d *definitionCore) FactoryMethodName() string { return d.factoryMethodName }

// SetInitMethodName sets the name of the initialization callback method.
func (d *definitionCore) SetInitMethodName(name string) { d.initMethodName = name }

// InitMethodName returns the initialization callback method name.
func (d *definitionCore) InitMethodName() string { return d.initMethodName }

// SetEnforceInitMethod sets whether a missing init method is a configuration
// error rather than being ignored.
func (d *definitionCore) SetEnforceInitMethod(enforce bool) { d.enforceInitMethod = enforce }

// IsEnforceInitMethod reports whether the init method is enforced.
func (d *definitionCore) IsEnforceInitMethod() bool { return d.enforceInitMethod }

// SetDestroyMethodName sets the name of the destruction callback method.
func (d *definitionCore) SetDestroyMethodName(name string) { d.destroyMethodName = name }

// DestroyMethodName returns the destruction callback method name.
func (d *definitionCore) DestroyMethodName() string { return d.destroyMethodName }

// SetEnforceDestroyMethod sets whether a missing destroy method is a
// configuration error rather than being ignored.
func (d *definitionCore) SetEnforceDestroyMethod(enforce bool) { d.enforceDestroyMethod = enforce }

// IsEnforceDestroyMethod reports whether the destroy method is enforced.
func (d *definitionCore) IsEnforceDestroyMethod() bool { return d.enforceDestroyMethod }

// ----------------------------------------------------------------------
// Classification and origin
// ----------------------------------------------------------------------

// SetSynthetic marks this definition as synthetic: defined by the container
// itself rather than by application configuration.
func (d *definitionCore) SetSynthetic(synthetic bool) { d.synthetic = synthetic }

// IsSynthetic reports whether this definition is synthetic.
func (d *definitionCore) IsSynthetic() bool { return d.synthetic }

// SetRole sets the definition's role classification.
func (d *definitionCore) SetRole(role Role) { d.role = role }

// Role returns the definition's role classification.
func (d *definitionCore) Role() Role { return d.role }

// SetDescription sets a human-readable description of this definition.
func (d *definitionCore) SetDescription(description string) { d.description = description }

// Description returns the human-readable description.
func (d *definitionCore) Description() string { return d.description }

// SetResource sets the opaque origin marker describing where this definition
// came from. Excluded from equality.
func (d *definitionCore) SetResource(resource any) { d.resource = resource }

// Resource returns the opaque origin marker.
func (d *definitionCore) Resource() any { return d.resource }

// SetResourceDescription records a textual origin description.
func (d *definitionCore) SetResourceDescription(description string) {
	d.resource = DescriptiveResource{Description: description}
}

// ResourceDescription returns a textual description of the definition's
// origin, or "" if none is known.
func (d *definitionCore) ResourceDescription() string {
	switch r := d.resource.(type) {
	case DescriptiveResource:
		return r.Description
	case string:
		return r
	case fmt.Stringer:
		return r.String()
	default:
		return ""
	}
}

// SetOriginatingBeanDefinition records the definition this one was derived
// from, for example by decoration.
func (d *definitionCore) SetOriginatingBeanDefinition(origin BeanDefinition) {
	d.resource = BeanDefinitionResource{Definition: origin}
}

// OriginatingBeanDefinition returns the definition this one was derived
// from, or nil.
func (d *definitionCore) OriginatingBeanDefinition() BeanDefinition {
	if r, ok := d.resource.(BeanDefinitionResource); ok {
		return r.Definition
	}
	return nil
}

// ----------------------------------------------------------------------
// Override engine
// ----------------------------------------------------------------------

// mergePolicy tags how one field combines during OverrideFrom.
type mergePolicy int

const (
	// replaceIfPresent overwrites the inherited value only when the child
	// actually specifies one, so an unset child field never erases it.
	replaceIfPresent mergePolicy = iota

	// alwaysReplace takes the child's value unconditionally: the field is
	// complete per-definition policy, not incrementally composed.
	alwaysReplace

	// appendValues layers the child's entries onto the inherited ones.
	appendValues
)

// fieldPolicy binds one definition field to its merge policy. The table form
// keeps the override semantics in one place: adding a field to the
// definition means adding exactly one row here.
type fieldPolicy struct {
	field  string
	policy mergePolicy
	apply  func(dst, src *definitionCore) error
}

// overridePolicies is consulted in order. The class name row must precede
// the resolved class row: a child's resolved class supersedes the name form
// it may also carry.
var overridePolicies = []fieldPolicy{
	{"className", replaceIfPresent, func(dst, src *definitionCore) error {
		if name := src.class.Name(); name != "" {
			dst.SetClassName(name)
		}
		return nil
	}},
	{"class", replaceIfPresent, func(dst, src *definitionCore) error {
		if src.class.IsResolved() {
			dst.class = src.class
		}
		return nil
	}},
	{"factoryBeanName", replaceIfPresent, func(dst, src *definitionCore) error {
		if src.factoryBeanName != "" {
			dst.factoryBeanName = src.factoryBeanName
		}
		return nil
	}},
	{"factoryMethodName", replaceIfPresent, func(dst, src *definitionCore) error {
		if src.factoryMethodName != "" {
			dst.factoryMethodName = src.factoryMethodName
		}
		return nil
	}},
	{"scope", replaceIfPresent, func(dst, src *definitionCore) error {
		if src.scope != ScopeDefault {
			dst.SetScope(src.scope)
		}
		return nil
	}},
	{"initMethod", replaceIfPresent, func(dst, src *definitionCore) error {
		// The enforce flag travels with the method name: a child redefines
		// both which method runs and whether its absence is an error.
		if src.initMethodName != "" {
			dst.initMethodName = src.initMethodName
			dst.enforceInitMethod = src.enforceInitMethod
		}
		return nil
	}},
	{"destroyMethod", replaceIfPresent, func(dst, src *definitionCore) error {
		if src.destroyMethodName != "" {
			dst.destroyMethodName = src.destroyMethodName
			dst.enforceDestroyMethod = src.enforceDestroyMethod
		}
		return nil
	}},
	{"abstract", alwaysReplace, func(dst, src *definitionCore) error {
		dst.abstractFlag = src.abstractFlag
		return nil
	}},
	{"lazyInit", alwaysReplace, func(dst, src *definitionCore) error {
		dst.lazyInit = src.lazyInit
		return nil
	}},
	{"role", alwaysReplace, func(dst, src *definitionCore) error {
		dst.role = src.role
		return nil
	}},
	{"autowireMode", alwaysReplace, func(dst, src *definitionCore) error {
		dst.autowireMode = src.autowireMode
		return nil
	}},
	{"dependencyCheck", alwaysReplace, func(dst, src *definitionCore) error {
		dst.dependencyCheck = src.dependencyCheck
		return nil
	}},
	{"dependsOn", alwaysReplace, func(dst, src *definitionCore) error {
		dst.dependsOn = slices.Clone(src.dependsOn)
		return nil
	}},
	{"autowireCandidate", alwaysReplace, func(dst, src *definitionCore) error {
		dst.autowireCandidate = src.autowireCandidate
		return nil
	}},
	{"primary", alwaysReplace, func(dst, src *definitionCore) error {
		dst.primary = src.primary
		return nil
	}},
	{"nonPublicAccessAllowed", alwaysReplace, func(dst, src *definitionCore) error {
		dst.nonPublicAccessAllowed = src.nonPublicAccessAllowed
		return nil
	}},
	{"lenientConstructorResolution", alwaysReplace, func(dst, src *definitionCore) error {
		dst.lenientConstructorResolution = src.lenientConstructorResolution
		return nil
	}},
	{"synthetic", alwaysReplace, func(dst, src *definitionCore) error {
		dst.synthetic = src.synthetic
		return nil
	}},
	{"source", alwaysReplace, func(dst, src *definitionCore) error {
		dst.source = src.source
		return nil
	}},
	{"resource", alwaysReplace, func(dst, src *definitionCore) error {
		dst.resource = src.resource
		return nil
	}},
	{"constructorArguments", appendValues, func(dst, src *definitionCore) error {
		return dst.constructorArgs.AddArgumentValues(src.constructorArgs)
	}},
	{"propertyValues", appendValues, func(dst, src *definitionCore) error {
		return dst.propertyValues.AddAll(src.propertyValues)
	}},
	{"methodOverrides", appendValues, func(dst, src *definitionCore) error {
		dst.methodOverrides.AddAll(src.methodOverrides)
		return nil
	}},
	{"qualifiers", appendValues, func(dst, src *definitionCore) error {
		dst.copyQualifiersFrom(src)
		return nil
	}},
	{"attributes", appendValues, func(dst, src *definitionCore) error {
		dst.copyAttributesFrom(&src.attributeAccessor)
		return nil
	}},
}

// OverrideFrom layers the other definition's settings onto this one. The
// receiver is presumed to be a fresh deep copy of a resolved parent; callers
// re-deriving a merged definition must always start from a fresh copy, never
// merge into an already-merged instance.
func (d *definitionCore) OverrideFrom(other BeanDefinition) error {
	if other == nil {
		return PreconditionError{Cause: ErrDefinitionNil}
	}
	src := other.core()
	for _, fp := range overridePolicies {
		if err := fp.apply(d, src); err != nil {
			return err
		}
	}
	return nil
}

// ApplyDefaults applies container-level defaults. The enforce flags are
// forced off: the method names came from ambient defaults, not an explicit
// per-bean declaration.
func (d *definitionCore) ApplyDefaults(defaults *BeanDefinitionDefaults) {
	if defaults == nil {
		return
	}
	d.lazyInit = defaults.LazyInit
	d.autowireMode = defaults.AutowireMode
	d.dependencyCheck = defaults.DependencyCheck
	d.initMethodName = defaults.InitMethodName
	d.enforceInitMethod = false
	d.destroyMethodName = defaults.DestroyMethodName
	d.enforceDestroyMethod = false
}

// ----------------------------------------------------------------------
// Validation
// ----------------------------------------------------------------------

// Validate checks the definition's configuration for consistency. A static
// factory method cannot be combined with method overrides, since the factory
// method must create the instance entirely. When the class is resolved, the
// method overrides are checked against its method set.
func (d *definitionCore) Validate() error {
	if !d.methodOverrides.IsEmpty() && d.factoryMethodName != "" {
		return ValidationError{
			BeanClassName: d.ClassName(),
			Cause: errors.New("cannot combine static factory method with method overrides: " +
				"the static factory method must create the instance"),
		}
	}
	if d.class.IsResolved() {
		return d.PrepareMethodOverrides()
	}
	return nil
}

// PrepareMethodOverrides checks each method override against the resolved
// class: no matching method is a fatal configuration error; exactly one
// match marks the override as not overloaded, letting the execution-time
// collaborator skip argument-type disambiguation. More than one reachable
// match is left ambiguous for execution-time resolution.
func (d *definitionCore) PrepareMethodOverrides() error {
	if d.methodOverrides.IsEmpty() {
		return nil
	}
	t, err := d.class.Type()
	if err != nil {
		return err
	}
	for _, override := range d.methodOverrides.Overrides() {
		count := typeutil.MethodCountForName(t, override.MethodName())
		if count == 0 {
			return ValidationError{
				BeanClassName: d.ClassName(),
				Cause: fmt.Errorf("invalid method override: no method with name %q on type %s",
					override.MethodName(), typeutil.FormatType(t)),
			}
		}
		if count == 1 {
			override.MarkOverloaded(false)
		}
	}
	return nil
}

// ----------------------------------------------------------------------
// Copy, equality, description
// ----------------------------------------------------------------------

// copyFrom deep-copies the original's state into the receiver: argument,
// property, override, and qualifier registries get independent copies, while
// source and resource markers are shared by reference as immutable origins.
func (d *definitionCore) copyFrom(original *definitionCore) {
	d.class = original.class
	d.scope = original.scope
	d.singleton = original.singleton
	d.prototype = original.prototype
	d.abstractFlag = original.abstractFlag
	d.lazyInit = original.lazyInit
	d.autowireMode = original.autowireMode
	d.dependencyCheck = original.dependencyCheck
	d.dependsOn = slices.Clone(original.dependsOn)
	d.autowireCandidate = original.autowireCandidate
	d.primary = original.primary
	d.qualifierNames = nil
	d.qualifiers = make(map[string]*AutowireCandidateQualifier, len(original.qualifiers))
	d.copyQualifiersFrom(original)
	d.nonPublicAccessAllowed = original.nonPublicAccessAllowed
	d.lenientConstructorResolution = original.lenientConstructorResolution
	d.constructorArgs = original.constructorArgs.Copy()
	d.propertyValues = original.propertyValues.Copy()
	d.methodOverrides = original.methodOverrides.Copy()
	d.factoryBeanName = original.factoryBeanName
	d.factoryMethodName = original.factoryMethodName
	d.initMethodName = original.initMethodName
	d.destroyMethodName = original.destroyMethodName
	d.enforceInitMethod = original.enforceInitMethod
	d.enforceDestroyMethod = original.enforceDestroyMethod
	d.synthetic = original.synthetic
	d.role = original.role
	d.description = original.description
	d.source = original.source
	d.resource = original.resource
	d.attributes = nil
	d.copyAttributesFrom(&original.attributeAccessor)
}

// contentEquals compares the full shared configuration state. The source and
// resource markers and the description are diagnostic only and excluded.
func (d *definitionCore) contentEquals(other *definitionCore) bool {
	if d == other {
		return true
	}
	if other == nil {
		return false
	}
	return d.ClassName() == other.ClassName() &&
		d.scope == other.scope &&
		d.abstractFlag == other.abstractFlag &&
		d.lazyInit == other.lazyInit &&
		d.autowireMode == other.autowireMode &&
		d.dependencyCheck == other.dependencyCheck &&
		slices.Equal(d.dependsOn, other.dependsOn) &&
		d.autowireCandidate == other.autowireCandidate &&
		d.qualifiersEqual(other) &&
		d.primary == other.primary &&
		d.nonPublicAccessAllowed == other.nonPublicAccessAllowed &&
		d.lenientConstructorResolution == other.lenientConstructorResolution &&
		d.constructorArgs.Equals(other.constructorArgs) &&
		d.propertyValues.Equals(other.propertyValues) &&
		d.methodOverrides.Equals(other.methodOverrides) &&
		d.factoryBeanName == other.factoryBeanName &&
		d.factoryMethodName == other.factoryMethodName &&
		d.initMethodName == other.initMethodName &&
		d.enforceInitMethod == other.enforceInitMethod &&
		d.destroyMethodName == other.destroyMethodName &&
		d.enforceDestroyMethod == other.enforceDestroyMethod &&
		d.synthetic == other.synthetic &&
		d.role == other.role &&
		d.attributesEqual(&other.attributeAccessor)
}

// ContentHash hashes a stable, cheap subset of the configuration: class
// name, scope, argument values, property values, and factory linkage. Equal
// definitions hash equal; unequal ones need not differ beyond these fields.
func (d *definitionCore) ContentHash() uint64 {
	h := newHasher()
	h.writeString(d.ClassName())
	h.writeString(d.scope)
	h.writeUint(d.constructorArgs.ContentHash())
	h.writeUint(d.propertyValues.ContentHash())
	h.writeString(d.factoryBeanName)
	h.writeString(d.factoryMethodName)
	return h.sum
}

// describe renders the shared configuration in a human-readable summary,
// shared by the variants' String methods.
func (d *definitionCore) describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "class [%s]", d.ClassName())
	fmt.Fprintf(&b, "; scope=%s", d.scope)
	fmt.Fprintf(&b, "; abstract=%t", d.abstractFlag)
	fmt.Fprintf(&b, "; lazyInit=%t", d.lazyInit)
	fmt.Fprintf(&b, "; autowireMode=%s", d.autowireMode)
	fmt.Fprintf(&b, "; dependencyCheck=%s", d.dependencyCheck)
	fmt.Fprintf(&b, "; autowireCandidate=%t", d.autowireCandidate)
	fmt.Fprintf(&b, "; primary=%t", d.primary)
	fmt.Fprintf(&b, "; factoryBeanName=%s", d.factoryBeanName)
	fmt.Fprintf(&b, "; factoryMethodName=%s", d.factoryMethodName)
	fmt.Fprintf(&b, "; initMethodName=%s", d.initMethodName)
	fmt.Fprintf(&b, "; destroyMethodName=%s", d.destroyMethodName)
	if desc := d.ResourceDescription(); desc != "" {
		fmt.Fprintf(&b, "; defined in %s", desc)
	}
	return b.String()
}
