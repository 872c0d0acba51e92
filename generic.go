package beandef

// GenericBeanDefinition is the standard user-authored definition form. It may
// name a parent definition to inherit from; merging a parent chain into a
// runtime-active form produces a RootBeanDefinition.
type GenericBeanDefinition struct {
	definitionCore

	parentName string
}

var _ BeanDefinition = (*GenericBeanDefinition)(nil)

// NewGenericBeanDefinition creates a generic definition with standard
// defaults, configured by the given options.
func NewGenericBeanDefinition(opts ...DefinitionOption) *GenericBeanDefinition {
	g := &GenericBeanDefinition{definitionCore: newDefinitionCore()}
	for _, opt := range opts {
		opt(&g.definitionCore)
	}
	return g
}

// GenericBeanDefinitionFrom creates a generic definition as a deep copy of
// the given definition, including its parent name.
func GenericBeanDefinitionFrom(original BeanDefinition) *GenericBeanDefinition {
	g := NewGenericBeanDefinition()
	g.copyFrom(original.core())
	g.parentName = original.ParentName()
	return g
}

// SetParentName assigns the name of the parent definition to inherit from.
// An empty name clears the parent reference.
func (g *GenericBeanDefinition) SetParentName(name string) error {
	g.parentName = name
	return nil
}

// ParentName returns the parent definition name, or "" if none.
func (g *GenericBeanDefinition) ParentName() string { return g.parentName }

// Clone creates an independent deep copy of this definition.
func (g *GenericBeanDefinition) Clone() BeanDefinition {
	return GenericBeanDefinitionFrom(g)
}

// Equals compares two generic definitions by parent name and configuration
// content.
func (g *GenericBeanDefinition) Equals(other BeanDefinition) bool {
	if other == nil {
		return false
	}
	otherGeneric, ok := other.(*GenericBeanDefinition)
	if !ok {
		return false
	}
	return g.parentName == otherGeneric.parentName &&
		g.contentEquals(&otherGeneric.definitionCore)
}

func (g *GenericBeanDefinition) String() string {
	if g.parentName != "" {
		return "Generic bean with parent '" + g.parentName + "': " + g.describe()
	}
	return "Generic bean: " + g.describe()
}
