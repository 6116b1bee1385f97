package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID `json:"user_id" example:"7d9f1a46-5d0c-4b2e-9f1a-0c3d8e6b4a21"`
	Username string    `json:"username,omitempty" example:"inkwell"`
	jwt.RegisteredClaims
}

// AuthService validates and issues the HS256 tokens the API runs on
type AuthService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &AuthService{
		secret: []byte(secret),
		issuer: "writing-tracker-backend",
		ttl:    24 * time.Hour,
	}, nil
}

// GenerateJWT creates a signed token for a user
func (s *AuthService) GenerateJWT(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == uuid.Nil {
		// older tokens carry the user id only in the subject
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, fmt.Errorf("token carries no user id")
		}
		claims.UserID = id
	}
	return claims, nil
}
