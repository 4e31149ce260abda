package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

// Claims carries the caller identity for the role toggle. There are no
// credentials behind it; the token only pins which user id and role the client
// chose to act as.
type Claims struct {
	UserID int64       `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates role-toggle session tokens.
type Service struct {
	secret    []byte
	expiresIn time.Duration
}

// NewService returns a configured token service.
func NewService(secret string, expiresIn time.Duration) *Service {
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}
	return &Service{secret: []byte(secret), expiresIn: expiresIn}
}

// Generate issues a session token for the given user and role.
func (s *Service) Generate(userID int64, role models.Role) (string, error) {
	if userID == 0 {
		return "", errors.New("token: user id is required")
	}
	if !role.Valid() {
		return "", errors.New("token: unknown role")
	}

	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies and decodes a session token.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("token: unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if !claims.Role.Valid() {
			return nil, errors.New("token: unknown role")
		}
		return claims, nil
	}

	return nil, errors.New("token: invalid claims")
}
