package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie the token travels in. The token is never
// returned in a response body.
const CookieName = "jwt"

// Claims is the identity payload embedded in the session token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 session tokens.
type TokenManager struct {
	secret   string
	issuer   string
	lifetime time.Duration
}

func NewTokenManager(secret, issuer string, lifetime time.Duration) *TokenManager {
	if issuer == "" {
		issuer = "openshelf"
	}
	if lifetime == 0 {
		lifetime = 24 * time.Hour
	}
	return &TokenManager{secret: secret, issuer: issuer, lifetime: lifetime}
}

// Lifetime is the validity window for issued tokens, which the transport
// layer mirrors in the cookie expiry.
func (tm *TokenManager) Lifetime() time.Duration {
	return tm.lifetime
}

// Issue signs a token carrying the user id and email.
func (tm *TokenManager) Issue(userID uint, email string) (string, error) {
	if userID == 0 {
		return "", fmt.Errorf("user id required")
	}
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.lifetime)),
			Issuer:    tm.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.secret))
}

// Validate parses and verifies a token string.
func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tm.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token failed: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
