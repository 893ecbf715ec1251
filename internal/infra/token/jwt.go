package token

import (
	"errors"
	"fmt"
	"time"

	"vinyl-api/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalid = errors.New("invalid or expired token")

// Claims is what the auth middleware puts on the request context.
type Claims struct {
	UserID int
	Email  string
	Role   users.Role
}

type Issuer interface {
	Issue(u users.User) (string, error)
}

type Verifier interface {
	Verify(raw string) (Claims, error)
}

// HMAC signs and verifies HS256 tokens with a shared secret.
type HMAC struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewHMAC(secret string, ttl time.Duration) *HMAC {
	return &HMAC{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (h *HMAC) Issue(u users.User) (string, error) {
	if len(h.secret) == 0 {
		return "", errors.New("JWT secret not configured")
	}
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"exp":     h.now().Add(h.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

func (h *HMAC) Verify(raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return h.secret, nil
	}, jwt.WithTimeFunc(h.now), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalid
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalid
	}
	id, ok := mc["user_id"].(float64)
	if !ok {
		return Claims{}, ErrInvalid
	}
	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)
	if !users.Role(role).Valid() {
		return Claims{}, ErrInvalid
	}
	return Claims{UserID: int(id), Email: email, Role: users.Role(role)}, nil
}
