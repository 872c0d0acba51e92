package beandef

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootBeanDefinition_RejectsParentName(t *testing.T) {
	t.Parallel()

	r := NewRootBeanDefinition(WithClassName("app.Service"))
	assert.Equal(t, "", r.ParentName())

	err := r.SetParentName("base")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRootParentName)

	// Clearing an already empty parent name is allowed.
	assert.NoError(t, r.SetParentName(""))
	assert.Equal(t, "", r.ParentName())
}

func TestRootBeanDefinition_FactoryMethod(t *testing.T) {
	t.Parallel()

	r := NewRootBeanDefinition(WithClassName("app.Service"))
	assert.False(t, r.IsFactoryMethodUnique())
	assert.False(t, r.IsFactoryMethod("CreateWidget"))

	require.NoError(t, r.SetUniqueFactoryMethodName("CreateWidget"))
	assert.True(t, r.IsFactoryMethodUnique())
	assert.True(t, r.IsFactoryMethod("CreateWidget"))
	assert.False(t, r.IsFactoryMethod("CreateGadget"))
	assert.False(t, r.IsFactoryMethod(""))

	err := r.SetUniqueFactoryMethodName("")
	assert.ErrorIs(t, err, ErrFactoryMethodNameEmpty)
}

func TestRootBeanDefinition_TargetType(t *testing.T) {
	t.Parallel()

	r := NewRootBeanDefinition()
	assert.Nil(t, r.TargetType())

	typ := reflect.TypeOf(&widgetFactory{})
	r.SetTargetType(typ)
	assert.Equal(t, typ, r.TargetType())

	r.SetTargetType(nil)
	assert.Nil(t, r.TargetType())
}

func TestRootBeanDefinition_BeforeInstantiationResolved(t *testing.T) {
	t.Parallel()

	r := NewRootBeanDefinition()
	resolved, known := r.BeforeInstantiationResolved()
	assert.False(t, resolved)
	assert.False(t, known)

	r.SetBeforeInstantiationResolved(true)
	resolved, known = r.BeforeInstantiationResolved()
	assert.True(t, resolved)
	assert.True(t, known)

	r.SetBeforeInstantiationResolved(false)
	resolved, known = r.BeforeInstantiationResolved()
	assert.False(t, resolved)
	assert.True(t, known)
}

func TestExecutableCache_GetOrResolveOnce(t *testing.T) {
	t.Parallel()

	r := NewRootBeanDefinition(WithClassName("app.Service"))
	cache := r.ConstructionCache()

	var resolutions atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			executable, err := cache.GetOrResolve(func() (any, error) {
				resolutions.Add(1)
				return "resolved-constructor", nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "resolved-constructor", executable)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), resolutions.Load())
	assert.Equal(t, "resolved-constructor", cache.Executable())
}

func TestExecutableCache_Arguments(t *testing.T) {
	t.Parallel()

	var cache ExecutableCache
	executable, resolved, args := cache.Arguments()
	assert.Nil(t, executable)
	assert.False(t, resolved)
	assert.Nil(t, args)

	cache.StoreExecutable("ctor")
	cache.StorePreparedArguments([]any{"raw"})
	assert.Equal(t, []any{"raw"}, cache.PreparedArguments())

	cache.StoreArguments([]any{"final"})
	executable, resolved, args = cache.Arguments()
	assert.Equal(t, "ctor", executable)
	assert.True(t, resolved)
	assert.Equal(t, []any{"final"}, args)
	assert.Nil(t, cache.PreparedArguments())

	cache.Clear()
	executable, resolved, _ = cache.Arguments()
	assert.Nil(t, executable)
	assert.False(t, resolved)
}

func TestPostProcessingCache_Members(t *testing.T) {
	t.Parallel()

	r := NewRootBeanDefinition()
	cache := r.PostProcessingCache()
	assert.False(t, cache.IsPostProcessed())

	cache.MarkPostProcessed()
	assert.True(t, cache.IsPostProcessed())

	member := Member{Owner: reflect.TypeOf(widgetFactory{}), Name: "client"}
	assert.False(t, cache.IsConfigMemberManaged(member))
	cache.RegisterConfigMember(member)
	assert.True(t, cache.IsConfigMemberManaged(member))

	cache.RegisterInitMethod("Init")
	assert.True(t, cache.IsInitMethodManaged("Init"))
	assert.False(t, cache.IsInitMethodManaged("Start"))

	cache.RegisterDestroyMethod("Close")
	assert.True(t, cache.IsDestroyMethodManaged("Close"))
}

func TestPostProcessingCache_ConcurrentRegistration(t *testing.T) {
	t.Parallel()

	var cache PostProcessingCache
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.RegisterInitMethod("Init")
			cache.RegisterDestroyMethod("Close")
			cache.MarkPostProcessed()
		}()
	}
	wg.Wait()

	assert.True(t, cache.IsPostProcessed())
	assert.True(t, cache.IsInitMethodManaged("Init"))
	assert.True(t, cache.IsDestroyMethodManaged("Close"))
}

func TestRootBeanDefinition_CloneKeepsSettingsNotCaches(t *testing.T) {
	t.Parallel()

	r := NewRootBeanDefinition(WithClassName("app.Service"), WithScope(ScopePrototype))
	r.SetCachingAllowed(false)
	require.NoError(t, r.SetUniqueFactoryMethodName("CreateWidget"))
	r.SetTargetType(reflect.TypeOf(widgetFactory{}))
	r.ConstructionCache().StoreExecutable("resolved")
	r.PostProcessingCache().MarkPostProcessed()

	clone := r.Clone().(*RootBeanDefinition)
	assert.True(t, r.Equals(clone))
	assert.False(t, clone.IsCachingAllowed())
	assert.True(t, clone.IsFactoryMethodUnique())
	assert.Equal(t, reflect.TypeOf(widgetFactory{}), clone.TargetType())

	// Resolution state never travels with a clone.
	assert.Nil(t, clone.ConstructionCache().Executable())
	assert.False(t, clone.PostProcessingCache().IsPostProcessed())

	// The copies are independent.
	require.NoError(t, clone.PropertyValues().AddNamed("host", "clone-host"))
	assert.False(t, r.PropertyValues().Contains("host"))
}

func TestRootBeanDefinitionFrom_GenericSource(t *testing.T) {
	t.Parallel()

	g := NewGenericBeanDefinition(WithClassName("app.Service"))
	require.NoError(t, g.SetParentName("base"))
	require.NoError(t, g.PropertyValues().AddNamed("host", "localhost"))

	r := RootBeanDefinitionFrom(g)
	assert.Equal(t, "app.Service", r.ClassName())
	assert.Equal(t, "localhost", r.PropertyValues().Get("host").Value())
	// The parent linkage never carries over: root definitions are merged.
	assert.Equal(t, "", r.ParentName())
	assert.True(t, r.IsCachingAllowed())
}

func TestRootBeanDefinition_DecoratedDefinition(t *testing.T) {
	t.Parallel()

	target := NewGenericBeanDefinition(WithClassName("app.Service"))
	holder, err := NewBeanDefinitionHolder(target, "service")
	require.NoError(t, err)

	r := NewRootBeanDefinition(WithClassName("app.ServiceProxy"))
	assert.Nil(t, r.DecoratedDefinition())
	r.SetDecoratedDefinition(holder)
	assert.Same(t, holder, r.DecoratedDefinition())

	assert.Contains(t, r.String(), "Root bean: ")
}
