// Package beandef provides the configuration metadata model for a dependency
// injection container: bean definitions, constructor argument and property
// value registries, method overrides, qualifiers, and the merge engine that
// flattens parent/child definition chains into runtime-active form.
//
// The package deliberately stops at metadata. It describes how beans should
// be constructed and configured, but never constructs anything itself;
// instantiation, autowiring execution, and type conversion belong to
// collaborators layered on top.
//
// The two definition variants mirror the two halves of a definition's life:
//
//   - GenericBeanDefinition is the user-authored form. It may name a parent
//     definition to inherit from.
//   - RootBeanDefinition is the merged, runtime-active form. It never has a
//     parent and carries caches for construction resolution.
//
// Merging works by deep-copying the parent and layering the child on top
// with OverrideFrom:
//
//	merged := beandef.RootBeanDefinitionFrom(parent)
//	if err := merged.OverrideFrom(child); err != nil {
//		return err
//	}
//	if err := merged.Validate(); err != nil {
//		return err
//	}
//
// Definitions, aliases, and generated names are managed by a
// BeanDefinitionRegistry; SimpleBeanDefinitionRegistry is the plain
// in-memory implementation, safe for concurrent use.
package beandef
