package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt"
)

type JWT struct {
	secret []byte
}

func New(secret []byte) *JWT {
	return &JWT{secret: secret}
}

// Create signs a token holding a single claim pair.
func (j *JWT) Create(key, value string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		key: value,
	})
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString and returns the claim stored under key.
func (j *JWT) Verify(tokenString, key string) (string, bool, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", false, nil
	}

	value, ok := claims[key].(string)
	if !ok {
		return "", false, nil
	}

	return value, true, nil
}
