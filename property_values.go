package beandef

// PropertyValue holds a single bean property name/value pair, with an
// optional flag and a one-way cache for the type-converted value.
type PropertyValue struct {
	attributeAccessor

	name     string
	rawValue any
	optional bool

	converted      bool
	convertedValue any
}

// NewPropertyValue creates a property value for the given name.
func NewPropertyValue(name string, value any) *PropertyValue {
	return &PropertyValue{name: name, rawValue: value}
}

// Name returns the property name.
func (pv *PropertyValue) Name() string { return pv.name }

// Value returns the configured property value.
func (pv *PropertyValue) Value() any { return pv.rawValue }

// SetValue sets the configured property value.
func (pv *PropertyValue) SetValue(value any) { pv.rawValue = value }

// IsOptional reports whether this property is optional: a missing target
// property is ignored rather than reported as an error.
func (pv *PropertyValue) IsOptional() bool { return pv.optional }

// SetOptional marks this property as optional.
func (pv *PropertyValue) SetOptional(optional bool) { pv.optional = optional }

// Converted reports whether a converted value has been cached.
func (pv *PropertyValue) Converted() bool { return pv.converted }

// SetConvertedValue caches the type-converted value of the property.
func (pv *PropertyValue) SetConvertedValue(value any) {
	pv.converted = true
	pv.convertedValue = value
}

// ConvertedValue returns the cached type-converted value, or nil if no
// conversion has happened yet.
func (pv *PropertyValue) ConvertedValue() any { return pv.convertedValue }

// ContentEquals compares two property values by name and configured value.
func (pv *PropertyValue) ContentEquals(other *PropertyValue) bool {
	if pv == other {
		return true
	}
	if other == nil {
		return false
	}
	return pv.name == other.name && valuesEqual(pv.rawValue, other.rawValue)
}

// ContentHash returns a hash consistent with ContentEquals.
func (pv *PropertyValue) ContentHash() uint64 {
	h := newHasher()
	h.writeString(pv.name)
	h.writeValue(pv.rawValue)
	return h.sum
}

// Copy creates an independent property value with the same name, value,
// optional flag, source, and attributes. The conversion cache is not copied.
func (pv *PropertyValue) Copy() *PropertyValue {
	copied := NewPropertyValue(pv.name, pv.rawValue)
	copied.optional = pv.optional
	copied.source = pv.source
	copied.copyAttributesFrom(&pv.attributeAccessor)
	return copied
}

// PropertyValues aggregates the property values of a bean definition in
// registration order.
type PropertyValues struct {
	values []*PropertyValue
}

// NewPropertyValues creates an empty property value registry.
func NewPropertyValues() *PropertyValues {
	return &PropertyValues{}
}

// Add registers a property value. When a value with the same name exists and
// the new value supports merging, the new value is merged with the existing
// one (existing first) before replacing it in place, preserving order.
func (pvs *PropertyValues) Add(pv *PropertyValue) error {
	if pv == nil {
		return PreconditionError{Cause: ErrValueHolderNil, Detail: "property value cannot be nil"}
	}
	for i, current := range pvs.values {
		if current.name == pv.name {
			merged, err := mergeIfPossible(pv.rawValue, current.rawValue)
			if err != nil {
				return err
			}
			pv.SetValue(merged)
			pvs.values[i] = pv
			return nil
		}
	}
	pvs.values = append(pvs.values, pv)
	return nil
}

// AddNamed registers a property value for the given name.
func (pvs *PropertyValues) AddNamed(name string, value any) error {
	return pvs.Add(NewPropertyValue(name, value))
}

// AddAll deep-copies every property value from the other registry into this
// one, applying the same merge rules as direct registration.
func (pvs *PropertyValues) AddAll(other *PropertyValues) error {
	if other == nil {
		return nil
	}
	for _, pv := range other.values {
		if err := pvs.Add(pv.Copy()); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the property value with the given name, or nil if not present.
func (pvs *PropertyValues) Get(name string) *PropertyValue {
	for _, pv := range pvs.values {
		if pv.name == name {
			return pv
		}
	}
	return nil
}

// Contains reports whether a property value with the given name is present.
func (pvs *PropertyValues) Contains(name string) bool {
	return pvs.Get(name) != nil
}

// Remove removes the property value with the given name, if present.
func (pvs *PropertyValues) Remove(name string) {
	for i, pv := range pvs.values {
		if pv.name == name {
			pvs.values = append(pvs.values[:i], pvs.values[i+1:]...)
			return
		}
	}
}

// Values returns the property values in registration order.
func (pvs *PropertyValues) Values() []*PropertyValue {
	values := make([]*PropertyValue, len(pvs.values))
	copy(values, pvs.values)
	return values
}

// Len returns the number of property values.
func (pvs *PropertyValues) Len() int { return len(pvs.values) }

// IsEmpty reports whether no property values are registered.
func (pvs *PropertyValues) IsEmpty() bool { return len(pvs.values) == 0 }

// Copy creates a deep copy of this registry with independent values.
func (pvs *PropertyValues) Copy() *PropertyValues {
	copied := NewPropertyValues()
	// Add cannot fail when copying into an empty registry: merging only
	// triggers on name collisions.
	_ = copied.AddAll(pvs)
	return copied
}

// Equals compares two registries by property content, position by position.
func (pvs *PropertyValues) Equals(other *PropertyValues) bool {
	if pvs == other {
		return true
	}
	if other == nil {
		return false
	}
	if len(pvs.values) != len(other.values) {
		return false
	}
	for i, pv := range pvs.values {
		if !pv.ContentEquals(other.values[i]) {
			return false
		}
	}
	return true
}

// ContentHash returns a hash consistent with Equals.
func (pvs *PropertyValues) ContentHash() uint64 {
	h := newHasher()
	for _, pv := range pvs.values {
		h.writeUint(pv.ContentHash())
	}
	return h.sum
}
