package auth

import (
	"errors"
	"fmt"
	"time"

	"s2inventory/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails validation, whatever
// the underlying reason.
var ErrInvalidToken = errors.New("jeton invalide")

// Claims are the JWT claims carried by an access token. Permissions hold the
// zone and statistics codenames granted to the user.
type Claims struct {
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Manager signs and validates access tokens.
type Manager struct {
	secret []byte
}

// NewManager creates a token manager for the given signing secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Generate signs an access token for the identity, valid for ttl.
func (m *Manager) Generate(identity *models.UserIdentity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:    identity.Username,
		Permissions: identity.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signature du jeton: %w", err)
	}
	return signed, nil
}

// Parse validates a token and returns the identity it carries.
func (m *Manager) Parse(raw string) (*models.UserIdentity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return &models.UserIdentity{
		Username:    claims.Username,
		Permissions: claims.Permissions,
	}, nil
}
