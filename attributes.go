package beandef

import "sort"

// MetadataAttribute is one named attribute record together with the
// configuration source it was defined in.
type MetadataAttribute struct {
	Name   string
	Value  any
	Source any
}

// AttributeAccessor is the generic contract for attaching and accessing
// named metadata, used by bean definitions, qualifiers, and related entities
// for diagnostics and tracing.
type AttributeAccessor interface {
	// SetAttribute sets the attribute with the given name to the supplied
	// value. The last write for a given name wins.
	SetAttribute(name string, value any)

	// Attribute returns the value of the named attribute, or nil if the
	// attribute is not present.
	Attribute(name string) any

	// RemoveAttribute removes the named attribute and returns its value,
	// or nil if the attribute was not present.
	RemoveAttribute(name string) any

	// HasAttribute reports whether the named attribute is present.
	HasAttribute(name string) bool

	// AttributeNames returns the names of all present attributes, sorted.
	AttributeNames() []string
}

// attributeAccessor is the embedded AttributeAccessor implementation shared
// by every metadata-carrying entity. It additionally carries the definition
// source marker for the owning element.
type attributeAccessor struct {
	attributes map[string]*MetadataAttribute
	source     any
}

var _ AttributeAccessor = (*attributeAccessor)(nil)

func (a *attributeAccessor) SetAttribute(name string, value any) {
	a.AddMetadataAttribute(&MetadataAttribute{Name: name, Value: value})
}

// AddMetadataAttribute stores a full attribute record, including its source.
func (a *attributeAccessor) AddMetadataAttribute(attribute *MetadataAttribute) {
	if attribute == nil {
		return
	}
	if a.attributes == nil {
		a.attributes = make(map[string]*MetadataAttribute)
	}
	a.attributes[attribute.Name] = attribute
}

// MetadataAttribute returns the full attribute record for the given name,
// or nil if not present.
func (a *attributeAccessor) MetadataAttribute(name string) *MetadataAttribute {
	return a.attributes[name]
}

func (a *attributeAccessor) Attribute(name string) any {
	if attribute := a.attributes[name]; attribute != nil {
		return attribute.Value
	}
	return nil
}

func (a *attributeAccessor) RemoveAttribute(name string) any {
	attribute := a.attributes[name]
	if attribute == nil {
		return nil
	}
	delete(a.attributes, name)
	return attribute.Value
}

func (a *attributeAccessor) HasAttribute(name string) bool {
	_, ok := a.attributes[name]
	return ok
}

func (a *attributeAccessor) AttributeNames() []string {
	names := make([]string, 0, len(a.attributes))
	for name := range a.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the configuration source marker for this metadata element.
// The exact type depends on the configuration mechanism that produced it;
// the marker is opaque to this package and excluded from equality.
func (a *attributeAccessor) Source() any { return a.source }

// SetSource sets the configuration source marker for this metadata element.
func (a *attributeAccessor) SetSource(source any) { a.source = source }

// copyAttributesFrom copies all attribute records from the given accessor,
// overwriting same-named attributes.
func (a *attributeAccessor) copyAttributesFrom(other *attributeAccessor) {
	for _, name := range other.AttributeNames() {
		a.AddMetadataAttribute(other.MetadataAttribute(name))
	}
}

// attributesEqual compares two attribute stores by content. Records match by
// name and value; attribute sources are diagnostic markers and excluded.
func (a *attributeAccessor) attributesEqual(other *attributeAccessor) bool {
	if len(a.attributes) != len(other.attributes) {
		return false
	}
	for name, attribute := range a.attributes {
		otherAttribute := other.attributes[name]
		if otherAttribute == nil || !valuesEqual(attribute.Value, otherAttribute.Value) {
			return false
		}
	}
	return true
}

// attributesHash folds the attribute store's content into the given hasher.
func (a *attributeAccessor) attributesHash(h *hasher) {
	for _, name := range a.AttributeNames() {
		h.writeString(name)
		h.writeValue(a.attributes[name].Value)
	}
}
