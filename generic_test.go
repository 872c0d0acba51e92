package beandef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericBeanDefinition_ParentName(t *testing.T) {
	t.Parallel()

	g := NewGenericBeanDefinition(WithClassName("app.Service"))
	assert.Equal(t, "", g.ParentName())

	require.NoError(t, g.SetParentName("base"))
	assert.Equal(t, "base", g.ParentName())

	require.NoError(t, g.SetParentName(""))
	assert.Equal(t, "", g.ParentName())
}

func TestGenericBeanDefinition_CloneIsDeep(t *testing.T) {
	t.Parallel()

	g := NewGenericBeanDefinition(WithClassName("app.Service"))
	require.NoError(t, g.SetParentName("base"))
	require.NoError(t, g.PropertyValues().AddNamed("host", "localhost"))
	g.SetAttribute("origin", "test")

	clone := g.Clone().(*GenericBeanDefinition)
	assert.True(t, g.Equals(clone))
	assert.Equal(t, "base", clone.ParentName())

	require.NoError(t, clone.PropertyValues().AddNamed("port", 5432))
	clone.SetAttribute("origin", "clone")
	assert.False(t, g.PropertyValues().Contains("port"))
	assert.Equal(t, "test", g.Attribute("origin"))
}

func TestGenericBeanDefinition_EqualityIncludesParent(t *testing.T) {
	t.Parallel()

	a := NewGenericBeanDefinition(WithClassName("app.Service"))
	b := NewGenericBeanDefinition(WithClassName("app.Service"))
	assert.True(t, a.Equals(b))

	require.NoError(t, b.SetParentName("base"))
	assert.False(t, a.Equals(b))
}

func TestGenericBeanDefinition_String(t *testing.T) {
	t.Parallel()

	g := NewGenericBeanDefinition(WithClassName("app.Service"))
	assert.Contains(t, g.String(), "Generic bean: ")

	require.NoError(t, g.SetParentName("base"))
	assert.Contains(t, g.String(), "Generic bean with parent 'base': ")
}
