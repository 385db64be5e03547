package modelcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/modelcheck"
)

func TestBuilder(t *testing.T) {
	type profile struct {
		Nickname string
		Website  string
	}

	t.Run("chained rules evaluate in call order", func(t *testing.T) {
		reg := modelcheck.NewRegistry()
		reg.Define(profile{}).
			Field("nickname").Named("Nickname").
			MinLength(3).
			AlphaNumeric()

		errs := reg.For(profile{Nickname: "a!"}).ValidateField("nickname")
		assert.Equal(t, []string{
			"Nickname must be at least 3 characters long",
			"Nickname must contain only letters and numbers",
		}, errs)
	})

	t.Run("field switches the chain to another field", func(t *testing.T) {
		reg := modelcheck.NewRegistry()
		reg.Define(profile{}).
			Field("nickname").Required().
			Field("website").URL()

		s := reg.SchemaFor(profile{})
		assert.Equal(t, []string{"nickname", "website"}, s.FieldNames())
	})

	t.Run("rule attaches arbitrary implementations", func(t *testing.T) {
		reg := modelcheck.NewRegistry()
		reg.Define(profile{}).
			Field("nickname").Named("Nickname").
			Rule(modelcheck.Check("nickname is taken", func(value, _ any) bool {
				return value != "admin"
			}))

		errs := reg.For(profile{Nickname: "admin"}).ValidateField("nickname")
		assert.Equal(t, []string{"nickname is taken"}, errs)
	})

	t.Run("schema exposes the structure being built", func(t *testing.T) {
		reg := modelcheck.NewRegistry()
		b := reg.Define(profile{})
		b.Field("website").URL()

		f, ok := b.Schema().Field("website")
		require.True(t, ok)
		assert.Len(t, f.Rules(), 1)
	})
}
