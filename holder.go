package beandef

import (
	"fmt"
	"slices"
	"strings"
)

// BeanReference is a configured value that refers to another managed bean by
// name rather than holding a value directly. References are resolved by the
// container when the enclosing definition is instantiated.
type BeanReference interface {
	// BeanName returns the name of the referenced bean.
	BeanName() string
}

// RuntimeBeanReference is the standard by-name reference, optionally pointing
// into the parent container.
type RuntimeBeanReference struct {
	beanName string
	toParent bool
	source   any
}

var _ BeanReference = (*RuntimeBeanReference)(nil)

// NewRuntimeBeanReference creates a reference to the named bean in the
// current container.
func NewRuntimeBeanReference(beanName string) *RuntimeBeanReference {
	return &RuntimeBeanReference{beanName: beanName}
}

// NewParentBeanReference creates a reference to the named bean in the parent
// container, bypassing any same-named bean in the current one.
func NewParentBeanReference(beanName string) *RuntimeBeanReference {
	return &RuntimeBeanReference{beanName: beanName, toParent: true}
}

// BeanName returns the name of the referenced bean.
func (r *RuntimeBeanReference) BeanName() string { return r.beanName }

// IsToParent reports whether the reference targets the parent container.
func (r *RuntimeBeanReference) IsToParent() bool { return r.toParent }

// Source returns the configuration source marker for this reference.
func (r *RuntimeBeanReference) Source() any { return r.source }

// SetSource sets the configuration source marker for this reference.
func (r *RuntimeBeanReference) SetSource(source any) { r.source = source }

// Equals compares two references by bean name and parent flag.
func (r *RuntimeBeanReference) Equals(other *RuntimeBeanReference) bool {
	if r == other {
		return true
	}
	if other == nil {
		return false
	}
	return r.beanName == other.beanName && r.toParent == other.toParent
}

func (r *RuntimeBeanReference) String() string {
	return "<" + r.beanName + ">"
}

// BeanDefinitionHolder pairs a definition with its registration name and
// aliases, keeping the naming together with the definition while it travels
// through parsing and decoration steps.
type BeanDefinitionHolder struct {
	definition BeanDefinition
	beanName   string
	aliases    []string
}

// NewBeanDefinitionHolder creates a holder for the given definition and
// name, with optional aliases.
func NewBeanDefinitionHolder(definition BeanDefinition, beanName string, aliases ...string) (*BeanDefinitionHolder, error) {
	if definition == nil {
		return nil, PreconditionError{Cause: ErrDefinitionNil}
	}
	if beanName == "" {
		return nil, PreconditionError{Cause: ErrBeanNameEmpty}
	}
	return &BeanDefinitionHolder{
		definition: definition,
		beanName:   beanName,
		aliases:    aliases,
	}, nil
}

// BeanDefinition returns the held definition.
func (h *BeanDefinitionHolder) BeanDefinition() BeanDefinition { return h.definition }

// BeanName returns the registration name.
func (h *BeanDefinitionHolder) BeanName() string { return h.beanName }

// Aliases returns the registered aliases.
func (h *BeanDefinitionHolder) Aliases() []string { return h.aliases }

// Source returns the held definition's configuration source marker.
func (h *BeanDefinitionHolder) Source() any { return h.definition.Source() }

// MatchesName reports whether the given name matches the registration name
// or any alias.
func (h *BeanDefinitionHolder) MatchesName(name string) bool {
	if name == "" {
		return false
	}
	return name == h.beanName || slices.Contains(h.aliases, name)
}

// ShortDescription summarizes the holder as name plus aliases.
func (h *BeanDefinitionHolder) ShortDescription() string {
	if len(h.aliases) == 0 {
		return fmt.Sprintf("Bean definition with name '%s'", h.beanName)
	}
	return fmt.Sprintf("Bean definition with name '%s' and aliases [%s]",
		h.beanName, strings.Join(h.aliases, ", "))
}

// LongDescription summarizes the holder including the definition itself.
func (h *BeanDefinitionHolder) LongDescription() string {
	return h.ShortDescription() + ": " + h.definition.String()
}

// Equals compares two holders by name, aliases, and definition content.
func (h *BeanDefinitionHolder) Equals(other *BeanDefinitionHolder) bool {
	if h == other {
		return true
	}
	if other == nil {
		return false
	}
	return h.beanName == other.beanName &&
		slices.Equal(h.aliases, other.aliases) &&
		h.definition.Equals(other.definition)
}

func (h *BeanDefinitionHolder) String() string {
	return h.LongDescription()
}
