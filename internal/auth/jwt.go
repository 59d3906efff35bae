package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// Identity is the validated actor extracted from an access token.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     domain.UserRole
}

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the username and role.
// Username is what the catalog records as performed_by.
type accessClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject
// and username/role as custom claims.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, username string, role domain.UserRole) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
		Role:     role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the actor identity if valid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return Identity{
		UserID:   userID,
		Username: claims.Username,
		Role:     domain.UserRole(claims.Role),
	}, nil
}
