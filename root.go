package beandef

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Member identifies a field or method on a type, for recording configuration
// members that an external mechanism manages.
type Member struct {
	Owner reflect.Type
	Name  string
}

// ExecutableCache caches the outcome of construction resolution for a merged
// definition: the chosen constructor function or factory method, and the
// argument sets resolved for it. All access goes through the cell's own lock,
// independent of the post-processing cache, so construction and
// post-processing never contend with each other.
//
// The cached executable is opaque to this package; execution-time
// collaborators store whatever callable representation they resolve.
type ExecutableCache struct {
	mu                sync.Mutex
	executable        any
	argumentsResolved bool
	resolvedArguments []any
	preparedArguments []any
}

// Executable returns the cached constructor or factory method, or nil when
// none has been resolved yet.
func (c *ExecutableCache) Executable() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.executable
}

// StoreExecutable caches the resolved constructor or factory method.
func (c *ExecutableCache) StoreExecutable(executable any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.executable = executable
}

// GetOrResolve returns the cached executable, invoking resolve under the
// cell's lock to compute and cache it on first use. Concurrent callers
// observe exactly one resolution.
func (c *ExecutableCache) GetOrResolve(resolve func() (any, error)) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.executable != nil {
		return c.executable, nil
	}
	executable, err := resolve()
	if err != nil {
		return nil, err
	}
	c.executable = executable
	return executable, nil
}

// StoreArguments caches the fully resolved argument values and marks
// argument resolution complete.
func (c *ExecutableCache) StoreArguments(resolved []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.argumentsResolved = true
	c.resolvedArguments = resolved
	c.preparedArguments = nil
}

// StorePreparedArguments caches argument values that still need per-request
// post-processing before use.
func (c *ExecutableCache) StorePreparedArguments(prepared []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.argumentsResolved = true
	c.preparedArguments = prepared
}

// Arguments returns a consistent snapshot of the resolution state: the
// cached executable, whether arguments have been resolved, and the resolved
// argument values.
func (c *ExecutableCache) Arguments() (executable any, resolved bool, arguments []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.executable, c.argumentsResolved, c.resolvedArguments
}

// PreparedArguments returns the cached prepared arguments, or nil.
func (c *ExecutableCache) PreparedArguments() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preparedArguments
}

// Clear discards all cached resolution state.
func (c *ExecutableCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.executable = nil
	c.argumentsResolved = false
	c.resolvedArguments = nil
	c.preparedArguments = nil
}

// PostProcessingCache tracks which configuration members, init methods, and
// destroy methods of a merged definition are already managed externally, so
// the container's own lifecycle handling skips them. Guarded by its own
// lock, separate from construction resolution.
type PostProcessingCache struct {
	mu             sync.Mutex
	postProcessed  bool
	configMembers  map[Member]struct{}
	initMethods    map[string]struct{}
	destroyMethods map[string]struct{}
}

// MarkPostProcessed records that definition post-processing has been applied.
func (c *PostProcessingCache) MarkPostProcessed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.postProcessed = true
}

// IsPostProcessed reports whether definition post-processing has been applied.
func (c *PostProcessingCache) IsPostProcessed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.postProcessed
}

// RegisterConfigMember records a configuration member as externally managed.
func (c *PostProcessingCache) RegisterConfigMember(member Member) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configMembers == nil {
		c.configMembers = make(map[Member]struct{})
	}
	c.configMembers[member] = struct{}{}
}

// IsConfigMemberManaged reports whether the member is externally managed.
func (c *PostProcessingCache) IsConfigMemberManaged(member Member) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.configMembers[member]
	return ok
}

// RegisterInitMethod records an init method as externally managed.
func (c *PostProcessingCache) RegisterInitMethod(methodName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initMethods == nil {
		c.initMethods = make(map[string]struct{})
	}
	c.initMethods[methodName] = struct{}{}
}

// IsInitMethodManaged reports whether the init method is externally managed.
func (c *PostProcessingCache) IsInitMethodManaged(methodName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.initMethods[methodName]
	return ok
}

// RegisterDestroyMethod records a destroy method as externally managed.
func (c *PostProcessingCache) RegisterDestroyMethod(methodName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyMethods == nil {
		c.destroyMethods = make(map[string]struct{})
	}
	c.destroyMethods[methodName] = struct{}{}
}

// IsDestroyMethodManaged reports whether the destroy method is externally
// managed.
func (c *PostProcessingCache) IsDestroyMethodManaged(methodName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.destroyMethods[methodName]
	return ok
}

// RootBeanDefinition is the merged, runtime-active definition form the
// container actually instantiates from. It never names a parent: merging has
// already flattened any parent chain into it. Beyond the shared definition
// state it carries runtime caches for construction resolution and
// post-processing bookkeeping.
type RootBeanDefinition struct {
	definitionCore

	allowCaching          bool
	decoratedDefinition   *BeanDefinitionHolder
	targetType            atomic.Pointer[reflect.Type]
	factoryMethodUnique   bool
	instantiationResolved atomic.Pointer[bool]

	construction   ExecutableCache
	postProcessing PostProcessingCache
}

var _ BeanDefinition = (*RootBeanDefinition)(nil)

// NewRootBeanDefinition creates a root definition with standard defaults,
// configured by the given options.
func NewRootBeanDefinition(opts ...DefinitionOption) *RootBeanDefinition {
	r := &RootBeanDefinition{
		definitionCore: newDefinitionCore(),
		allowCaching:   true,
	}
	for _, opt := range opts {
		opt(&r.definitionCore)
	}
	return r
}

// RootBeanDefinitionFrom creates a root definition as a deep copy of the
// given definition. Copying from another root definition preserves its
// root-specific settings; the runtime caches always start empty.
func RootBeanDefinitionFrom(original BeanDefinition) *RootBeanDefinition {
	r := NewRootBeanDefinition()
	r.copyFrom(original.core())
	if originalRoot, ok := original.(*RootBeanDefinition); ok {
		r.allowCaching = originalRoot.allowCaching
		r.decoratedDefinition = originalRoot.decoratedDefinition
		r.targetType.Store(originalRoot.targetType.Load())
		r.factoryMethodUnique = originalRoot.factoryMethodUnique
	}
	return r
}

// ParentName always returns "": a root definition has no parent.
func (r *RootBeanDefinition) ParentName() string { return "" }

// SetParentName rejects any non-empty parent name. A root definition is the
// result of merging and cannot be turned back into a child definition.
func (r *RootBeanDefinition) SetParentName(name string) error {
	if name != "" {
		return PreconditionError{Cause: ErrRootParentName}
	}
	return nil
}

// SetCachingAllowed sets whether runtime caching of resolved construction
// state is allowed for this definition.
func (r *RootBeanDefinition) SetCachingAllowed(allowed bool) { r.allowCaching = allowed }

// IsCachingAllowed reports whether runtime caching is allowed.
func (r *RootBeanDefinition) IsCachingAllowed() bool { return r.allowCaching }

// SetDecoratedDefinition records the target definition this definition
// decorates, for example when wrapping it in a proxy definition.
func (r *RootBeanDefinition) SetDecoratedDefinition(holder *BeanDefinitionHolder) {
	r.decoratedDefinition = holder
}

// DecoratedDefinition returns the decorated target definition, or nil.
func (r *RootBeanDefinition) DecoratedDefinition() *BeanDefinitionHolder {
	return r.decoratedDefinition
}

// SetTargetType records the known runtime type of the eventual bean instance,
// which may differ from the declared class when a factory method is involved.
func (r *RootBeanDefinition) SetTargetType(t reflect.Type) {
	if t == nil {
		r.targetType.Store(nil)
		return
	}
	r.targetType.Store(&t)
}

// TargetType returns the known runtime type of the eventual bean instance,
// or nil when not determined yet.
func (r *RootBeanDefinition) TargetType() reflect.Type {
	if t := r.targetType.Load(); t != nil {
		return *t
	}
	return nil
}

// SetUniqueFactoryMethodName registers a factory method name known to be
// unambiguous, letting construction resolution skip candidate comparison.
func (r *RootBeanDefinition) SetUniqueFactoryMethodName(name string) error {
	if name == "" {
		return PreconditionError{Cause: ErrFactoryMethodNameEmpty}
	}
	r.factoryMethodName = name
	r.factoryMethodUnique = true
	return nil
}

// IsFactoryMethodUnique reports whether the factory method is known to be
// unambiguous.
func (r *RootBeanDefinition) IsFactoryMethodUnique() bool { return r.factoryMethodUnique }

// IsFactoryMethod reports whether the given method name is the configured
// factory method.
func (r *RootBeanDefinition) IsFactoryMethod(methodName string) bool {
	return methodName != "" && methodName == r.factoryMethodName
}

// SetBeforeInstantiationResolved records whether a pre-instantiation
// shortcut applies to this definition.
func (r *RootBeanDefinition) SetBeforeInstantiationResolved(resolved bool) {
	r.instantiationResolved.Store(&resolved)
}

// BeforeInstantiationResolved returns the pre-instantiation shortcut state.
// The known result is false until the question has been answered at all.
func (r *RootBeanDefinition) BeforeInstantiationResolved() (resolved, known bool) {
	if p := r.instantiationResolved.Load(); p != nil {
		return *p, true
	}
	return false, false
}

// ConstructionCache returns the construction resolution cache cell.
func (r *RootBeanDefinition) ConstructionCache() *ExecutableCache { return &r.construction }

// PostProcessingCache returns the post-processing bookkeeping cache cell.
func (r *RootBeanDefinition) PostProcessingCache() *PostProcessingCache { return &r.postProcessing }

// Clone creates an independent deep copy, preserving the root-specific
// settings but starting with fresh runtime caches.
func (r *RootBeanDefinition) Clone() BeanDefinition {
	return RootBeanDefinitionFrom(r)
}

// Equals compares two root definitions by configuration content. The runtime
// caches are resolution state, not configuration, and are excluded.
func (r *RootBeanDefinition) Equals(other BeanDefinition) bool {
	if other == nil {
		return false
	}
	otherRoot, ok := other.(*RootBeanDefinition)
	if !ok {
		return false
	}
	return r.contentEquals(&otherRoot.definitionCore)
}

func (r *RootBeanDefinition) String() string {
	return "Root bean: " + r.describe()
}
