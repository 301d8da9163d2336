package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("token is invalid or expired")
)

// Payload is the authenticated identity carried by a token.
type Payload struct {
	UserID string
	Email  string
}

// Manager issues and verifies access tokens.
type Manager interface {
	CreateToken(userID, email string) (string, error)
	Verify(token string) (Payload, error)
}

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type implManager struct {
	secret []byte
	expiry time.Duration
}

// NewManager creates a JWT-backed Manager. Expiry defaults to 12 hours
// when zero.
func NewManager(secret string, expiry time.Duration) Manager {
	if expiry <= 0 {
		expiry = 12 * time.Hour
	}
	return &implManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// CreateToken issues a signed token for the given user.
func (m *implManager) CreateToken(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	})
	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning its Payload.
func (m *implManager) Verify(tokenStr string) (Payload, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || c.Subject == "" {
		return Payload{}, ErrInvalidToken
	}

	return Payload{UserID: c.Subject, Email: c.Email}, nil
}
