package auth

import (
	"fmt"
	"time"

	"impact-explorer-backend/internal/config"
	apperrors "impact-explorer-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims represents the admin capability token claims
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService implements the admin gate: a submitted password is compared
// verbatim against the single configured secret; on match the caller gets a
// session-scoped bearer token. No hashing, no rate limiting, no attempt
// tracking — this is a low-stakes internal tool's gate, and the token is
// never persisted server-side.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// LoginResponse carries the issued admin capability token
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Login checks the submitted password against the configured admin secret
// and issues a bounded-lifetime admin token on match. A mismatch returns
// ErrIncorrectPassword, a user-visible state rather than a fault.
func (s *AuthService) Login(password string) (*LoginResponse, error) {
	if password != s.cfg.AdminPassword {
		return nil, apperrors.ErrIncorrectPassword
	}

	ttl := time.Duration(s.cfg.AdminTokenTTLMin) * time.Minute
	token, err := s.generateAdminToken(ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// ValidateToken parses and validates an admin token string
func (s *AuthService) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Role != "admin" {
		return nil, fmt.Errorf("token does not carry the admin role")
	}
	return claims, nil
}

func (s *AuthService) generateAdminToken(ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "impact-explorer",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
