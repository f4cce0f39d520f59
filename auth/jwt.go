// Package auth issues and verifies the signed bearer credential carried by
// admin write requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the credential payload: subject id plus the display fields the
// middleware attaches to the request.
type Claims struct {
	AdminID  uint   `json:"adminId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and parses admin tokens with a single HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL is the configured token lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue signs a token for the given admin, expiring after the manager's TTL.
func (m *Manager) Issue(admin *models.Admin) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies signature and expiry and returns the claims. Failures come
// back as AuthError so the route boundary maps them to 401.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.NewAuth("token expired, please login again")
		}
		return nil, apperr.NewAuth("invalid token")
	}
	if !token.Valid {
		return nil, apperr.NewAuth("invalid token")
	}
	return claims, nil
}
