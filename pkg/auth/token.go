package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the identity provider asserts about a bearer token.
type Claims struct {
	UserID uint
	Email  string
	Role   string
}

// TokenVerifier validates bearer tokens issued by the identity provider.
// Tokens are HS256-signed with a secret shared with the provider.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(secret),
	}
}

func (v *TokenVerifier) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userIDFloat, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid user_id claim")
	}

	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	if role == "" {
		role = "user"
	}

	return &Claims{
		UserID: uint(userIDFloat),
		Email:  email,
		Role:   role,
	}, nil
}

// GenerateToken mints a token the way the identity provider does. Used by
// local tooling and tests; production tokens come from the provider itself.
func GenerateToken(secret string, userID uint, email, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":     email,
		"email":   email,
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
