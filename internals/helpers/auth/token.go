package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"quizku_backend/internals/constants"
)

const tokenIssuer = "quizku"

// Claims isi access token: identitas + role. Role di token dianggap otoritatif
// selama token belum kedaluwarsa.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenClaims  = errors.New("invalid token claims")
)

// IssueToken menandatangani token HS256 untuk user.
func IssueToken(secret string, userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", errors.New("jwt secret kosong")
	}
	if !constants.IsValidRole(role) {
		return "", fmt.Errorf("role tidak dikenal: %q", role)
	}

	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken memverifikasi signature, algoritma, exp, dan bentuk klaim.
func ParseToken(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.ExpiresAt == nil {
		return nil, ErrTokenClaims
	}
	if _, err := uuid.Parse(strings.TrimSpace(claims.UserID)); err != nil {
		return nil, ErrTokenClaims
	}
	if !constants.IsValidRole(claims.Role) {
		return nil, ErrTokenClaims
	}
	return claims, nil
}
