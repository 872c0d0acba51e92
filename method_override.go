package beandef

// MethodOverride marks a method on a managed bean as overridden by the
// container at instantiation time: either a lookup method returning another
// managed bean, or a method replaced wholesale by a replacer bean.
type MethodOverride interface {
	// MethodName returns the name of the method to override.
	MethodName() string

	// IsOverloaded reports whether the overridden method name may resolve to
	// more than one candidate, requiring argument-type disambiguation at
	// execution time. Defaults to true until validation proves otherwise.
	IsOverloaded() bool

	// MarkOverloaded records the result of overload checking during
	// validation.
	MarkOverloaded(overloaded bool)

	// Source returns the configuration source marker for this override.
	Source() any

	// Copy creates an independent copy of this override.
	Copy() MethodOverride

	// Equals compares two overrides by configuration content. The overloaded
	// marker is a validation result, not configuration, and is excluded.
	Equals(other MethodOverride) bool
}

type overrideBase struct {
	methodName string
	overloaded bool
	source     any
}

func (ob *overrideBase) MethodName() string { return ob.methodName }

func (ob *overrideBase) IsOverloaded() bool { return ob.overloaded }

func (ob *overrideBase) MarkOverloaded(overloaded bool) { ob.overloaded = overloaded }

func (ob *overrideBase) Source() any { return ob.source }

// SetSource sets the configuration source marker for this override.
func (ob *overrideBase) SetSource(source any) { ob.source = source }

// LookupOverride overrides a method to return the bean registered under the
// configured name.
type LookupOverride struct {
	overrideBase
	beanName string
}

var _ MethodOverride = (*LookupOverride)(nil)

// NewLookupOverride creates a lookup override for the given method,
// returning the named bean.
func NewLookupOverride(methodName, beanName string) *LookupOverride {
	return &LookupOverride{
		overrideBase: overrideBase{methodName: methodName, overloaded: true},
		beanName:     beanName,
	}
}

// BeanName returns the name of the bean the method should return.
func (lo *LookupOverride) BeanName() string { return lo.beanName }

func (lo *LookupOverride) Copy() MethodOverride {
	copied := NewLookupOverride(lo.methodName, lo.beanName)
	copied.overloaded = lo.overloaded
	copied.source = lo.source
	return copied
}

func (lo *LookupOverride) Equals(other MethodOverride) bool {
	otherLookup, ok := other.(*LookupOverride)
	if !ok {
		return false
	}
	return lo.methodName == otherLookup.methodName && lo.beanName == otherLookup.beanName
}

// ReplaceOverride replaces a method's implementation with the behavior of a
// replacer bean. Type identifiers optionally narrow which signature to
// replace when disambiguation is needed.
type ReplaceOverride struct {
	overrideBase
	replacerBeanName string
	typeIdentifiers  []string
}

var _ MethodOverride = (*ReplaceOverride)(nil)

// NewReplaceOverride creates a replace override for the given method,
// delegating to the named replacer bean.
func NewReplaceOverride(methodName, replacerBeanName string) *ReplaceOverride {
	return &ReplaceOverride{
		overrideBase:     overrideBase{methodName: methodName, overloaded: true},
		replacerBeanName: replacerBeanName,
	}
}

// ReplacerBeanName returns the name of the replacer bean.
func (ro *ReplaceOverride) ReplacerBeanName() string { return ro.replacerBeanName }

// AddTypeIdentifier adds a fragment of a parameter type name used to
// disambiguate the replaced signature.
func (ro *ReplaceOverride) AddTypeIdentifier(identifier string) {
	ro.typeIdentifiers = append(ro.typeIdentifiers, identifier)
}

// TypeIdentifiers returns the registered type identifier fragments.
func (ro *ReplaceOverride) TypeIdentifiers() []string { return ro.typeIdentifiers }

func (ro *ReplaceOverride) Copy() MethodOverride {
	copied := NewReplaceOverride(ro.methodName, ro.replacerBeanName)
	copied.overloaded = ro.overloaded
	copied.source = ro.source
	copied.typeIdentifiers = append([]string(nil), ro.typeIdentifiers...)
	return copied
}

func (ro *ReplaceOverride) Equals(other MethodOverride) bool {
	otherReplace, ok := other.(*ReplaceOverride)
	if !ok {
		return false
	}
	if ro.methodName != otherReplace.methodName || ro.replacerBeanName != otherReplace.replacerBeanName {
		return false
	}
	if len(ro.typeIdentifiers) != len(otherReplace.typeIdentifiers) {
		return false
	}
	for i, identifier := range ro.typeIdentifiers {
		if identifier != otherReplace.typeIdentifiers[i] {
			return false
		}
	}
	return true
}

// MethodOverrides aggregates the method overrides of a bean definition.
type MethodOverrides struct {
	overrides []MethodOverride
}

// NewMethodOverrides creates an empty override set.
func NewMethodOverrides() *MethodOverrides {
	return &MethodOverrides{}
}

// Add registers a method override.
func (mos *MethodOverrides) Add(override MethodOverride) {
	if override == nil {
		return
	}
	mos.overrides = append(mos.overrides, override)
}

// AddAll unions all overrides from the other set into this one.
func (mos *MethodOverrides) AddAll(other *MethodOverrides) {
	if other == nil {
		return
	}
	for _, override := range other.overrides {
		if !mos.contains(override) {
			mos.overrides = append(mos.overrides, override)
		}
	}
}

func (mos *MethodOverrides) contains(override MethodOverride) bool {
	for _, existing := range mos.overrides {
		if existing.Equals(override) {
			return true
		}
	}
	return false
}

// Get returns the override registered for the given method name. With
// multiple matches, the last registered override wins. Returns nil when no
// override matches.
func (mos *MethodOverrides) Get(methodName string) MethodOverride {
	var match MethodOverride
	for _, override := range mos.overrides {
		if override.MethodName() == methodName {
			match = override
		}
	}
	return match
}

// Overrides returns all registered overrides in registration order.
func (mos *MethodOverrides) Overrides() []MethodOverride {
	overrides := make([]MethodOverride, len(mos.overrides))
	copy(overrides, mos.overrides)
	return overrides
}

// Len returns the number of registered overrides.
func (mos *MethodOverrides) Len() int { return len(mos.overrides) }

// IsEmpty reports whether no overrides are registered.
func (mos *MethodOverrides) IsEmpty() bool { return len(mos.overrides) == 0 }

// Copy creates a deep copy of this override set.
func (mos *MethodOverrides) Copy() *MethodOverrides {
	copied := NewMethodOverrides()
	for _, override := range mos.overrides {
		copied.overrides = append(copied.overrides, override.Copy())
	}
	return copied
}

// Equals compares two override sets by content, position by position.
func (mos *MethodOverrides) Equals(other *MethodOverrides) bool {
	if mos == other {
		return true
	}
	if other == nil {
		return false
	}
	if len(mos.overrides) != len(other.overrides) {
		return false
	}
	for i, override := range mos.overrides {
		if !override.Equals(other.overrides[i]) {
			return false
		}
	}
	return true
}
