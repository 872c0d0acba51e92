package beandef

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleService struct{}

func TestClassReference_States(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		var cr ClassReference
		assert.True(t, cr.IsEmpty())
		assert.False(t, cr.IsResolved())
		assert.Equal(t, "", cr.Name())

		_, err := cr.Type()
		require.Error(t, err)
		var state IllegalStateError
		assert.True(t, errors.As(err, &state))
	})

	t.Run("unresolved name", func(t *testing.T) {
		t.Parallel()
		cr := ClassReferenceNamed("db.Pool")
		assert.False(t, cr.IsEmpty())
		assert.False(t, cr.IsResolved())
		assert.Equal(t, "db.Pool", cr.Name())

		_, err := cr.Type()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db.Pool")
	})

	t.Run("resolved type", func(t *testing.T) {
		t.Parallel()
		typ := reflect.TypeOf(&sampleService{})
		cr := ClassReferenceFor(typ)
		assert.True(t, cr.IsResolved())

		got, err := cr.Type()
		require.NoError(t, err)
		assert.Equal(t, typ, got)
		assert.Contains(t, cr.Name(), "sampleService")
	})
}

func TestClassReference_Resolve(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry()
	registry.Register(reflect.TypeOf(sampleService{}))

	t.Run("by string form", func(t *testing.T) {
		t.Parallel()
		cr := ClassReferenceNamed(reflect.TypeOf(sampleService{}).String())
		resolved, err := cr.Resolve(registry)
		require.NoError(t, err)
		assert.True(t, resolved.IsResolved())
	})

	t.Run("by explicit name", func(t *testing.T) {
		t.Parallel()
		registry.RegisterName("service", reflect.TypeOf(sampleService{}))
		cr := ClassReferenceNamed("service")
		resolved, err := cr.Resolve(registry)
		require.NoError(t, err)

		typ, err := resolved.Type()
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeOf(sampleService{}), typ)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		cr := ClassReferenceNamed("nowhere.Missing")
		_, err := cr.Resolve(registry)
		require.Error(t, err)

		var notFound TypeNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "nowhere.Missing", notFound.TypeName)
	})

	t.Run("already resolved is unchanged", func(t *testing.T) {
		t.Parallel()
		cr := ClassReferenceFor(reflect.TypeOf(sampleService{}))
		resolved, err := cr.Resolve(registry)
		require.NoError(t, err)
		assert.Equal(t, cr, resolved)
	})
}
