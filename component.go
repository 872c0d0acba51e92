package beandef

// ComponentDefinition presents a logical view of one configured component
// for tooling and diagnostics: the definitions and bean references the
// component contributes, grouped under a descriptive name.
type ComponentDefinition interface {
	// Name returns the component's descriptive name.
	Name() string

	// Description returns a human-readable description of the component.
	Description() string

	// BeanDefinitions returns the definitions registered to realize this
	// component.
	BeanDefinitions() []BeanDefinition

	// InnerBeanDefinitions returns the nested definitions configured as
	// values inside this component's definitions.
	InnerBeanDefinitions() []BeanDefinition

	// BeanReferences returns the by-name references this component's
	// definitions hold to other beans.
	BeanReferences() []BeanReference

	// Source returns the configuration source marker for this component.
	Source() any
}

// BeanComponentDefinition is the single-bean component view: one definition
// holder presented as a component. The inner definitions and references are
// collected once from the definition's directly configured property values;
// nested levels belong to the inner definitions' own component views.
type BeanComponentDefinition struct {
	holder           *BeanDefinitionHolder
	innerDefinitions []BeanDefinition
	references       []BeanReference
}

var _ ComponentDefinition = (*BeanComponentDefinition)(nil)

// NewBeanComponentDefinition creates a component view over the given holder,
// scanning its definition's property values for nested definitions and bean
// references.
func NewBeanComponentDefinition(holder *BeanDefinitionHolder) (*BeanComponentDefinition, error) {
	if holder == nil {
		return nil, PreconditionError{Cause: ErrDefinitionNil, Detail: "bean definition holder cannot be nil"}
	}
	bcd := &BeanComponentDefinition{holder: holder}
	for _, pv := range holder.BeanDefinition().PropertyValues().Values() {
		switch value := pv.Value().(type) {
		case *BeanDefinitionHolder:
			bcd.innerDefinitions = append(bcd.innerDefinitions, value.BeanDefinition())
		case BeanDefinition:
			bcd.innerDefinitions = append(bcd.innerDefinitions, value)
		case BeanReference:
			bcd.references = append(bcd.references, value)
		}
	}
	return bcd, nil
}

// Holder returns the underlying definition holder.
func (bcd *BeanComponentDefinition) Holder() *BeanDefinitionHolder { return bcd.holder }

// Name returns the registration name of the held definition.
func (bcd *BeanComponentDefinition) Name() string { return bcd.holder.BeanName() }

// Description returns the definition's own description when set, otherwise
// the holder's short description.
func (bcd *BeanComponentDefinition) Description() string {
	if description := bcd.holder.BeanDefinition().core().Description(); description != "" {
		return description
	}
	return bcd.holder.ShortDescription()
}

// BeanDefinitions returns the single held definition.
func (bcd *BeanComponentDefinition) BeanDefinitions() []BeanDefinition {
	return []BeanDefinition{bcd.holder.BeanDefinition()}
}

// InnerBeanDefinitions returns the nested definitions found in the held
// definition's property values.
func (bcd *BeanComponentDefinition) InnerBeanDefinitions() []BeanDefinition {
	inner := make([]BeanDefinition, len(bcd.innerDefinitions))
	copy(inner, bcd.innerDefinitions)
	return inner
}

// BeanReferences returns the bean references found in the held definition's
// property values.
func (bcd *BeanComponentDefinition) BeanReferences() []BeanReference {
	references := make([]BeanReference, len(bcd.references))
	copy(references, bcd.references)
	return references
}

// Source returns the held definition's configuration source marker.
func (bcd *BeanComponentDefinition) Source() any { return bcd.holder.Source() }

func (bcd *BeanComponentDefinition) String() string {
	return bcd.Description()
}
