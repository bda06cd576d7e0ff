package auth

import (
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims is the stateless session payload. Identity fields are copied in
// at issuance and read back on every request without a store round-trip.
type Claims struct {
	Username   string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed session token carrying the identity fields.
func (m *TokenManager) Issue(id *domain.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:   id.Username,
		Email:      id.Email,
		IsVerified: id.IsVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates the token and reconstructs the session identity.
func (m *TokenManager) Parse(tokenString string) (*domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &domain.Identity{
		ID:         claims.Subject,
		Username:   claims.Username,
		Email:      claims.Email,
		IsVerified: claims.IsVerified,
	}, nil
}
