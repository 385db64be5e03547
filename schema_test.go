package modelcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/modelcheck"
)

func TestSchema(t *testing.T) {
	t.Run("field names follow declaration order", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.AddRule("email", modelcheck.Required())
		s.AddRule("password", modelcheck.Required())
		s.AddRule("confirmPassword", modelcheck.Required())

		assert.Equal(t, []string{"email", "password", "confirmPassword"}, s.FieldNames())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("set field name creates the entry lazily", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.SetFieldName("email", "Email address")

		f, ok := s.Field("email")
		require.True(t, ok)
		assert.Equal(t, "Email address", f.Name())
		assert.Empty(t, f.Rules())
	})

	t.Run("rules accumulate across calls in order", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.AddRule("password", modelcheck.Required())
		s.AddRule("password", modelcheck.MinLength(8))

		f, _ := s.Field("password")
		require.Len(t, f.Rules(), 2)
		assert.True(t, f.Rules()[0].ChecksEmpty())
		assert.False(t, f.Rules()[1].ChecksEmpty())
	})

	t.Run("unknown field lookup reports absence", func(t *testing.T) {
		s := modelcheck.NewSchema()
		_, ok := s.Field("ghost")
		assert.False(t, ok)
	})

	t.Run("field names copy does not expose internals", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.AddRule("email", modelcheck.Required())

		names := s.FieldNames()
		names[0] = "mutated"
		assert.Equal(t, []string{"email"}, s.FieldNames())
	})
}
