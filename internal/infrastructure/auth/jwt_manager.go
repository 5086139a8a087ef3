package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"barterhub/pkg/errors"
)

// JWTManager issues and verifies HS256 session tokens.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

func NewJWTManager(secret string, expirySeconds int64) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

// Generate signs a token carrying the user id and role.
func (m *JWTManager) Generate(userID int64, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(m.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errors.Internal("Failed to sign token", err)
	}
	return signed, nil
}

// Verify parses the token and returns the user id and role it carries.
func (m *JWTManager) Verify(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.Unauthorized("Invalid or expired token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.Unauthorized("Invalid token claims", nil)
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", errors.Unauthorized("Invalid token subject", nil)
	}
	role, _ := claims["role"].(string)

	return int64(sub), role, nil
}
