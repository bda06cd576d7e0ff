package validation_test

import (
	"testing"

	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "john_doe", "User123", "a_b_c_d_e_f_g_h_i_j_"}
	for _, u := range valid {
		assert.NoError(t, validation.ValidateUsername(u), u)
	}

	invalid := map[string]string{
		"":          "username is required",
		"ab":        "username must be between 3 and 20 characters",
		"has space": "username may only contain letters, numbers, and underscores",
		"bad-char!": "username may only contain letters, numbers, and underscores",
		"this_name_is_way_too_long_for_us": "username must be between 3 and 20 characters",
	}
	for u, msg := range invalid {
		assert.EqualError(t, validation.ValidateUsername(u), msg, u)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validation.ValidatePassword("Str0ng!Pass"))

	cases := []string{
		"Sh0rt!a",       // under 8 chars
		"alllower1!",    // no upper
		"ALLUPPER1!",    // no lower
		"NoDigits!!",    // no digit
		"NoSpecial12ab", // no special
	}
	for _, p := range cases {
		assert.Error(t, validation.ValidatePassword(p), p)
	}
}

func TestValidateEmail(t *testing.T) {
	v := validator.New()

	assert.NoError(t, validation.ValidateEmail(v, "john@example.com"))
	assert.EqualError(t, validation.ValidateEmail(v, ""), "email is required")
	assert.EqualError(t, validation.ValidateEmail(v, "not-an-email"), "invalid email format")
}

func TestRegisteredTagValidators(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	type form struct {
		Username string `validate:"username"`
		Password string `validate:"password"`
	}

	assert.NoError(t, v.Struct(form{Username: "john_doe", Password: "Str0ng!Pass"}))
	assert.Error(t, v.Struct(form{Username: "x", Password: "Str0ng!Pass"}))
	assert.Error(t, v.Struct(form{Username: "john_doe", Password: "weak"}))
}
