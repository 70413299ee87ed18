package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the user a token was issued to. ID (jti) makes each token revocable.
type Claims struct {
	Sub string `json:"sub"`
	jwt.RegisteredClaims
}

func generateJTI() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateToken signs an HS256 token for userID that expires after ttl.
// It returns the token and its jti.
func GenerateToken(secret, userID string, ttl time.Duration) (string, string, error) {
	if secret == "" {
		return "", "", errors.New("jwt secret is empty")
	}
	jti, err := generateJTI()
	if err != nil {
		return "", "", fmt.Errorf("generate jti: %w", err)
	}

	now := time.Now()
	c := Claims{
		Sub: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return tokenStr, jti, nil
}

// ParseToken verifies the signature and expiry of tokenStr.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
