package beandef

// BeanDefinitionDefaults carries container-level defaults applied to
// definitions that do not declare their own values, typically at registration
// time before user configuration is layered on.
type BeanDefinitionDefaults struct {
	// LazyInit defaults the lazy initialization flag.
	LazyInit bool

	// AutowireMode defaults the autowiring policy.
	AutowireMode AutowireMode

	// DependencyCheck defaults the dependency check policy.
	DependencyCheck DependencyCheck

	// InitMethodName defaults the initialization callback method name.
	// Applied with enforcement off, since the bean may not define it.
	InitMethodName string

	// DestroyMethodName defaults the destruction callback method name.
	// Applied with enforcement off, since the bean may not define it.
	DestroyMethodName string
}
