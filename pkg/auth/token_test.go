package auth_test

import (
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var identity = &domain.Identity{
	ID:         "user-1",
	Username:   "john_doe",
	Email:      "john@example.com",
	IsVerified: true,
}

func TestIssueAndParse(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	tokenString, err := tokens.Issue(identity)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	parsed, err := tokens.Parse(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, identity.ID, parsed.ID)
	assert.Equal(t, identity.Username, parsed.Username)
	assert.Equal(t, identity.Email, parsed.Email)
	assert.True(t, parsed.IsVerified)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	tokenString, err := issuer.Issue(identity)
	assert.NoError(t, err)

	_, err = verifier.Parse(tokenString)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", -time.Minute)

	tokenString, err := tokens.Issue(identity)
	assert.NoError(t, err)

	_, err = tokens.Parse(tokenString)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsNonHMACAlgorithm(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	// alg=none tokens must never be accepted.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = tokens.Parse(tokenString)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	_, err := tokens.Parse("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
