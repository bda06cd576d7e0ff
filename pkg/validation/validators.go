package validation

import (
	"errors"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// 3-20 chars, letters/digits/underscore only
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("username", Username)
	_ = v.RegisterValidation("password", Password)
}

// Username validates the username acceptability rule used both by signup
// and by the standalone uniqueness check.
func Username(fl validator.FieldLevel) bool {
	return ValidateUsername(fl.Field().String()) == nil
}

// Password validates password strength.
func Password(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String()) == nil
}

// ValidateUsername reports why a username is unacceptable, or nil.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username is required")
	}
	if len(username) < 3 || len(username) > 20 {
		return errors.New("username must be between 3 and 20 characters")
	}
	if !usernameRegex.MatchString(username) {
		return errors.New("username may only contain letters, numbers, and underscores")
	}
	return nil
}

// ValidatePassword enforces the signup password policy: at least 8
// characters with upper, lower, digit, and special characters.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return errors.New("password must contain upper case, lower case, number, and special characters")
	}
	return nil
}

// ValidateEmail checks the email shape used by the query-string endpoints,
// where struct binding tags cannot apply.
func ValidateEmail(v *validator.Validate, email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if err := v.Var(email, "email"); err != nil {
		return errors.New("invalid email format")
	}
	return nil
}
