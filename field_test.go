package modelcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelcheck"
)

func TestFieldValidate(t *testing.T) {
	t.Run("no rules yields no errors", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.SetFieldName("bio", "Bio")
		f, ok := s.Field("bio")
		assert.True(t, ok)
		assert.Empty(t, f.Validate("anything", nil))
	})

	t.Run("only required fires on empty input", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.SetFieldName("email", "Email address")
		s.AddRule("email", modelcheck.Required(), modelcheck.Email())
		f, _ := s.Field("email")

		errs := f.Validate("", nil)
		assert.Equal(t, []string{"Email address is required"}, errs)
	})

	t.Run("only email fires on non-empty invalid input", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.SetFieldName("email", "Email address")
		s.AddRule("email", modelcheck.Required(), modelcheck.Email())
		f, _ := s.Field("email")

		errs := f.Validate("not-an-email", nil)
		assert.Equal(t, []string{"Email address must be a valid email address"}, errs)
	})

	t.Run("messages keep registration order", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.SetFieldName("code", "Code")
		s.AddRule("code",
			modelcheck.MinLength(5),
			modelcheck.Alpha(),
		)
		f, _ := s.Field("code")

		errs := f.Validate("a1", nil)
		assert.Equal(t, []string{
			"Code must be at least 5 characters long",
			"Code must contain only letters",
		}, errs)
	})

	t.Run("custom message ignores display name", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.SetFieldName("email", "Email address")
		s.AddRule("email", modelcheck.Required(modelcheck.WithMessage("cannot be blank")))
		f, _ := s.Field("email")

		assert.Equal(t, []string{"cannot be blank"}, f.Validate("", nil))
	})

	t.Run("default display name is a generic placeholder", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.AddRule("nickname", modelcheck.Required())
		f, _ := s.Field("nickname")

		assert.Equal(t, "Field", f.Name())
		assert.Equal(t, []string{"Field is required"}, f.Validate("", nil))
	})

	t.Run("last display name write wins", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.SetFieldName("email", "Email")
		s.SetFieldName("email", "Email address")
		f, _ := s.Field("email")
		assert.Equal(t, "Email address", f.Name())
	})

	t.Run("rules copy does not expose the chain", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.SetFieldName("email", "Email address")
		s.AddRule("email", modelcheck.Required())
		f, _ := s.Field("email")

		rules := f.Rules()
		rules[0] = modelcheck.Email()

		assert.Equal(t, []string{"Email address is required"}, f.Validate("", nil))
	})

	t.Run("one message per failing rule, no dedup", func(t *testing.T) {
		s := modelcheck.NewSchema()
		s.SetFieldName("code", "Code")
		s.AddRule("code",
			modelcheck.Alpha(modelcheck.WithMessage("bad")),
			modelcheck.AlphaNumeric(modelcheck.WithMessage("bad")),
		)
		f, _ := s.Field("code")

		assert.Equal(t, []string{"bad", "bad"}, f.Validate("a b", nil))
	})
}
