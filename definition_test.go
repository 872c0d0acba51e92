package beandef

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widgetFactory struct{}

func (widgetFactory) CreateWidget() any { return nil }

type renderLeft struct{}

func (renderLeft) Render() string { return "left" }

type renderRight struct{}

func (renderRight) Render() string { return "right" }

// Render is promoted ambiguously from both embedded fields and therefore
// absent from the method set.
type ambiguousRenderer struct {
	renderLeft
	renderRight
}

func TestDefinition_Defaults(t *testing.T) {
	t.Parallel()

	d := NewGenericBeanDefinition()

	assert.Equal(t, ScopeDefault, d.Scope())
	assert.True(t, d.IsSingleton())
	assert.False(t, d.IsPrototype())
	assert.False(t, d.IsAbstract())
	assert.False(t, d.IsLazyInit())
	assert.Equal(t, AutowireNo, d.AutowireMode())
	assert.Equal(t, DependencyCheckNone, d.DependencyCheck())
	assert.True(t, d.IsAutowireCandidate())
	assert.False(t, d.IsPrimary())
	assert.True(t, d.IsNonPublicAccessAllowed())
	assert.True(t, d.IsLenientConstructorResolution())
	assert.True(t, d.IsEnforceInitMethod())
	assert.True(t, d.IsEnforceDestroyMethod())
	assert.False(t, d.IsSynthetic())
	assert.Equal(t, RoleApplication, d.Role())
	assert.True(t, d.ConstructorArgumentValues().IsEmpty())
	assert.True(t, d.PropertyValues().IsEmpty())
	assert.True(t, d.MethodOverrides().IsEmpty())
}

func TestDefinition_Options(t *testing.T) {
	t.Parallel()

	cav := NewConstructorArgumentValues()
	require.NoError(t, cav.AddIndexedValue(0, "dsn"))

	d := NewGenericBeanDefinition(
		WithClass(reflect.TypeOf(widgetFactory{})),
		WithScope(ScopePrototype),
		WithAutowireMode(AutowireByType),
		WithDependencyCheck(DependencyCheckAll),
		WithFactoryMethod("factory", "CreateWidget"),
		WithLazyInit(true),
		WithConstructorArgumentValues(cav),
	)

	assert.True(t, d.HasClass())
	assert.True(t, d.IsPrototype())
	assert.False(t, d.IsSingleton())
	assert.Equal(t, AutowireByType, d.AutowireMode())
	assert.Equal(t, DependencyCheckAll, d.DependencyCheck())
	assert.Equal(t, "factory", d.FactoryBeanName())
	assert.Equal(t, "CreateWidget", d.FactoryMethodName())
	assert.True(t, d.IsLazyInit())
	assert.Equal(t, 1, d.ConstructorArgumentValues().ArgumentCount())
}

func TestDefinition_ScopeRecomputesFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scope     string
		singleton bool
		prototype bool
	}{
		{ScopeDefault, true, false},
		{ScopeSingleton, true, false},
		{ScopePrototype, false, true},
		{"session", false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("scope "+tt.scope, func(t *testing.T) {
			t.Parallel()
			d := NewGenericBeanDefinition(WithScope(tt.scope))
			assert.Equal(t, tt.singleton, d.IsSingleton())
			assert.Equal(t, tt.prototype, d.IsPrototype())
		})
	}
}

func TestDefinition_ResolvedAutowireMode(t *testing.T) {
	t.Parallel()

	explicit := NewGenericBeanDefinition(WithAutowireMode(AutowireByName))
	assert.Equal(t, AutowireByName, explicit.ResolvedAutowireMode())

	withClass := NewGenericBeanDefinition(
		WithClass(reflect.TypeOf(widgetFactory{})),
		WithAutowireMode(AutowireAutodetect),
	)
	assert.Equal(t, AutowireByType, withClass.ResolvedAutowireMode())
	// The stored mode keeps the autodetect marker.
	assert.Equal(t, AutowireAutodetect, withClass.AutowireMode())

	withoutClass := NewGenericBeanDefinition(WithAutowireMode(AutowireAutodetect))
	assert.Equal(t, AutowireConstructor, withoutClass.ResolvedAutowireMode())
}

func TestDefinition_ResolveClass(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry()
	registry.RegisterName("app.WidgetFactory", reflect.TypeOf(widgetFactory{}))

	d := NewGenericBeanDefinition(WithClassName("app.WidgetFactory"))
	assert.False(t, d.HasClass())

	typ, err := d.ResolveClass(registry)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(widgetFactory{}), typ)
	assert.True(t, d.HasClass())

	// A definition without any class name resolves to nil.
	anonymous := NewGenericBeanDefinition()
	typ, err = anonymous.ResolveClass(registry)
	require.NoError(t, err)
	assert.Nil(t, typ)

	unknown := NewGenericBeanDefinition(WithClassName("app.Missing"))
	_, err = unknown.ResolveClass(registry)
	var notFound TypeNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestDefinition_OverrideFrom(t *testing.T) {
	t.Parallel()

	newParent := func() *RootBeanDefinition {
		parent := NewRootBeanDefinition(WithClassName("app.Service"))
		parent.SetScope(ScopeSingleton)
		parent.SetInitMethodName("Init")
		parent.SetDestroyMethodName("Close")
		parent.SetLazyInit(true)
		parent.SetDependsOn("db")
		_ = parent.ConstructorArgumentValues().AddIndexedValue(0, "parent-arg")
		_ = parent.PropertyValues().AddNamed("host", "parent-host")
		parent.SetAttribute("origin", "parent")
		return parent
	}

	t.Run("empty child keeps explicit parent settings", func(t *testing.T) {
		t.Parallel()
		merged := RootBeanDefinitionFrom(newParent())
		require.NoError(t, merged.OverrideFrom(NewGenericBeanDefinition()))

		assert.Equal(t, "app.Service", merged.ClassName())
		assert.Equal(t, ScopeSingleton, merged.Scope())
		assert.Equal(t, "Init", merged.InitMethodName())
		assert.True(t, merged.IsEnforceInitMethod())
		assert.Equal(t, "Close", merged.DestroyMethodName())
		assert.Equal(t, "parent", merged.Attribute("origin"))

		// Per-definition flags always come from the child, even unset ones.
		assert.False(t, merged.IsLazyInit())
		assert.Empty(t, merged.DependsOn())
	})

	t.Run("child settings replace parent settings", func(t *testing.T) {
		t.Parallel()
		child := NewGenericBeanDefinition(WithClassName("app.SpecialService"))
		child.SetScope(ScopePrototype)
		child.SetInitMethodName("Start")
		child.SetEnforceInitMethod(false)
		child.SetPrimary(true)
		child.SetRole(RoleInfrastructure)

		merged := RootBeanDefinitionFrom(newParent())
		require.NoError(t, merged.OverrideFrom(child))

		assert.Equal(t, "app.SpecialService", merged.ClassName())
		assert.Equal(t, ScopePrototype, merged.Scope())
		assert.True(t, merged.IsPrototype())
		assert.Equal(t, "Start", merged.InitMethodName())
		assert.False(t, merged.IsEnforceInitMethod())
		// The destroy method was not overridden and survives with its flag.
		assert.Equal(t, "Close", merged.DestroyMethodName())
		assert.True(t, merged.IsEnforceDestroyMethod())
		assert.True(t, merged.IsPrimary())
		assert.Equal(t, RoleInfrastructure, merged.Role())
	})

	t.Run("resolved child class supersedes parent class name", func(t *testing.T) {
		t.Parallel()
		child := NewGenericBeanDefinition(WithClass(reflect.TypeOf(widgetFactory{})))

		merged := RootBeanDefinitionFrom(newParent())
		require.NoError(t, merged.OverrideFrom(child))
		assert.True(t, merged.HasClass())
	})

	t.Run("value registries append", func(t *testing.T) {
		t.Parallel()
		child := NewGenericBeanDefinition()
		require.NoError(t, child.ConstructorArgumentValues().AddIndexedValue(1, "child-arg"))
		require.NoError(t, child.PropertyValues().AddNamed("host", "child-host"))
		require.NoError(t, child.PropertyValues().AddNamed("port", 5432))
		child.SetAttribute("origin", "child")
		child.AddQualifier(NewQualifier("db.Primary"))
		child.MethodOverrides().Add(NewLookupOverride("CreateWidget", "widget"))

		merged := RootBeanDefinitionFrom(newParent())
		require.NoError(t, merged.OverrideFrom(child))

		assert.True(t, merged.ConstructorArgumentValues().HasIndexedValue(0))
		assert.True(t, merged.ConstructorArgumentValues().HasIndexedValue(1))
		assert.Equal(t, "child-host", merged.PropertyValues().Get("host").Value())
		assert.Equal(t, 5432, merged.PropertyValues().Get("port").Value())
		assert.Equal(t, "child", merged.Attribute("origin"))
		assert.True(t, merged.HasQualifier("db.Primary"))
		assert.Equal(t, 1, merged.MethodOverrides().Len())
	})

	t.Run("merge is deterministic", func(t *testing.T) {
		t.Parallel()
		child := NewGenericBeanDefinition(WithClassName("app.SpecialService"))
		require.NoError(t, child.PropertyValues().AddNamed("port", 5432))

		first := RootBeanDefinitionFrom(newParent())
		require.NoError(t, first.OverrideFrom(child))
		second := RootBeanDefinitionFrom(newParent())
		require.NoError(t, second.OverrideFrom(child))

		assert.True(t, first.Equals(second))
		assert.Equal(t, first.ContentHash(), second.ContentHash())
	})

	t.Run("nil other rejected", func(t *testing.T) {
		t.Parallel()
		merged := RootBeanDefinitionFrom(newParent())
		err := merged.OverrideFrom(nil)
		assert.ErrorIs(t, err, ErrDefinitionNil)
	})
}

func TestDefinition_ApplyDefaults(t *testing.T) {
	t.Parallel()

	d := NewGenericBeanDefinition()
	d.ApplyDefaults(&BeanDefinitionDefaults{
		LazyInit:          true,
		AutowireMode:      AutowireByType,
		DependencyCheck:   DependencyCheckObjects,
		InitMethodName:    "Init",
		DestroyMethodName: "Close",
	})

	assert.True(t, d.IsLazyInit())
	assert.Equal(t, AutowireByType, d.AutowireMode())
	assert.Equal(t, DependencyCheckObjects, d.DependencyCheck())
	assert.Equal(t, "Init", d.InitMethodName())
	assert.Equal(t, "Close", d.DestroyMethodName())

	// Defaulted lifecycle methods are never enforced: the bean may simply
	// not define them.
	assert.False(t, d.IsEnforceInitMethod())
	assert.False(t, d.IsEnforceDestroyMethod())

	d.ApplyDefaults(nil)
	assert.True(t, d.IsLazyInit())
}

func TestDefinition_Validate(t *testing.T) {
	t.Parallel()

	t.Run("clean definition passes", func(t *testing.T) {
		t.Parallel()
		d := NewGenericBeanDefinition(WithClassName("app.Service"))
		assert.NoError(t, d.Validate())
	})

	t.Run("factory method conflicts with overrides", func(t *testing.T) {
		t.Parallel()
		d := NewGenericBeanDefinition(WithFactoryMethod("", "CreateWidget"))
		d.MethodOverrides().Add(NewLookupOverride("CreateWidget", "widget"))

		err := d.Validate()
		require.Error(t, err)
		var validation ValidationError
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("unknown override method is fatal", func(t *testing.T) {
		t.Parallel()
		d := NewGenericBeanDefinition(WithClass(reflect.TypeOf(widgetFactory{})))
		d.MethodOverrides().Add(NewLookupOverride("MissingMethod", "widget"))

		err := d.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MissingMethod")
	})

	t.Run("unique method marked not overloaded", func(t *testing.T) {
		t.Parallel()
		d := NewGenericBeanDefinition(WithClass(reflect.TypeOf(widgetFactory{})))
		override := NewLookupOverride("CreateWidget", "widget")
		d.MethodOverrides().Add(override)

		require.NoError(t, d.Validate())
		assert.False(t, override.IsOverloaded())
	})

	t.Run("ambiguous promotion stays overloaded", func(t *testing.T) {
		t.Parallel()
		d := NewGenericBeanDefinition(WithClass(reflect.TypeOf(ambiguousRenderer{})))
		override := NewReplaceOverride("Render", "renderer")
		d.MethodOverrides().Add(override)

		require.NoError(t, d.Validate())
		assert.True(t, override.IsOverloaded())
	})

	t.Run("unresolved class skips override checks", func(t *testing.T) {
		t.Parallel()
		d := NewGenericBeanDefinition(WithClassName("app.Service"))
		d.MethodOverrides().Add(NewLookupOverride("MissingMethod", "widget"))
		assert.NoError(t, d.Validate())
	})
}

func TestDefinition_Qualifiers(t *testing.T) {
	t.Parallel()

	d := NewGenericBeanDefinition()
	d.AddQualifier(NewQualifierWithValue("db.Primary", "main"))
	d.AddQualifier(NewQualifier("db.Pooled"))
	d.AddQualifier(nil)

	assert.True(t, d.HasQualifier("db.Primary"))
	assert.False(t, d.HasQualifier("db.Replica"))
	require.NotNil(t, d.Qualifier("db.Primary"))
	assert.Equal(t, "main", d.Qualifier("db.Primary").Value())

	// Re-adding a type name replaces the qualifier but keeps its position.
	d.AddQualifier(NewQualifierWithValue("db.Primary", "replacement"))
	qualifiers := d.Qualifiers()
	require.Len(t, qualifiers, 2)
	assert.Equal(t, "db.Primary", qualifiers[0].TypeName())
	assert.Equal(t, "replacement", qualifiers[0].Value())
	assert.Equal(t, "db.Pooled", qualifiers[1].TypeName())
}

func TestDefinition_EqualityAndHash(t *testing.T) {
	t.Parallel()

	build := func() *GenericBeanDefinition {
		d := NewGenericBeanDefinition(WithClassName("app.Service"), WithScope(ScopeSingleton))
		_ = d.ConstructorArgumentValues().AddIndexedValue(0, "dsn")
		_ = d.PropertyValues().AddNamed("host", "localhost")
		d.SetAttribute("origin", "test")
		d.SetInitMethodName("Init")
		return d
	}

	a := build()
	b := build()
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.ContentHash(), b.ContentHash())

	// Sources are diagnostic and excluded from equality.
	b.SetSource("somewhere else")
	assert.True(t, a.Equals(b))

	b.SetAttribute("origin", "changed")
	assert.False(t, a.Equals(b))

	c := build()
	c.SetPrimary(true)
	assert.False(t, a.Equals(c))

	// Different variants never compare equal.
	root := RootBeanDefinitionFrom(a)
	assert.False(t, a.Equals(root))
	assert.False(t, root.Equals(a))
}

func TestDefinition_Description(t *testing.T) {
	t.Parallel()

	d := NewGenericBeanDefinition(WithClassName("app.Service"), WithScope(ScopePrototype))
	d.SetResourceDescription("testdata/beans.yaml")

	s := d.String()
	assert.Contains(t, s, "class [app.Service]")
	assert.Contains(t, s, "scope=prototype")
	assert.Contains(t, s, "defined in testdata/beans.yaml")
}
