package beandef

// QualifierValueKey is the conventional attribute name for a qualifier's
// single value.
const QualifierValueKey = "value"

// AutowireCandidateQualifier associates a qualifier type with a bean
// definition so the definition can be matched against annotated injection
// points. Arbitrary qualifier attributes ride on the embedded attribute
// store.
type AutowireCandidateQualifier struct {
	attributeAccessor

	typeName string
}

// NewQualifier creates a qualifier for the given qualifier type name.
func NewQualifier(typeName string) *AutowireCandidateQualifier {
	return &AutowireCandidateQualifier{typeName: typeName}
}

// NewQualifierWithValue creates a qualifier for the given type name carrying
// the conventional value attribute.
func NewQualifierWithValue(typeName string, value any) *AutowireCandidateQualifier {
	q := NewQualifier(typeName)
	q.SetAttribute(QualifierValueKey, value)
	return q
}

// TypeName returns the qualifier type name this qualifier stands for.
func (q *AutowireCandidateQualifier) TypeName() string { return q.typeName }

// Value returns the conventional value attribute, or nil if not set.
func (q *AutowireCandidateQualifier) Value() any {
	return q.Attribute(QualifierValueKey)
}

// SetValue sets the conventional value attribute.
func (q *AutowireCandidateQualifier) SetValue(value any) {
	q.SetAttribute(QualifierValueKey, value)
}

// Copy creates an independent qualifier with the same type name, source, and
// attributes.
func (q *AutowireCandidateQualifier) Copy() *AutowireCandidateQualifier {
	copied := NewQualifier(q.typeName)
	copied.source = q.source
	copied.copyAttributesFrom(&q.attributeAccessor)
	return copied
}

// Equals compares two qualifiers by type name and attribute content.
func (q *AutowireCandidateQualifier) Equals(other *AutowireCandidateQualifier) bool {
	if q == other {
		return true
	}
	if other == nil {
		return false
	}
	return q.typeName == other.typeName && q.attributesEqual(&other.attributeAccessor)
}
