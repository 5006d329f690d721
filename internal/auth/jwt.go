package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the JWT payload carried by the bearer token.
// It embeds RegisteredClaims so expiration and issuance metadata are centralized.
type Claims struct {
	UserID uint64 `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies bearer tokens. The secret and expiry come
// from process configuration and are injected at startup.
type TokenManager struct {
	secret []byte
	expire time.Duration
}

func NewTokenManager(secret string, expireSeconds int64) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expire: time.Duration(expireSeconds) * time.Second,
	}
}

// Generate issues a signed token for the user, valid for the configured
// expiry (默认 7 天).
func (m *TokenManager) Generate(userID uint64, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse validates signature + expiry and returns the claims.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
