package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/config"
)

// APIClaims is the token payload issued for an authenticated API consumer.
type APIClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// AuthService exchanges configured API keys for short-lived JWTs and
// validates bearer tokens. Disabled deployments never construct it.
type AuthService struct {
	config    *config.Config
	logger    *logrus.Logger
	jwtSecret []byte
}

func NewAuthService(cfg *config.Config, logger *logrus.Logger) *AuthService {
	return &AuthService{
		config:    cfg,
		logger:    logger,
		jwtSecret: []byte(cfg.Auth.JWTSecret),
	}
}

// ValidateAPIKey reports whether the key is one of the configured consumers.
func (s *AuthService) ValidateAPIKey(apiKey string) error {
	for _, known := range s.config.Auth.APIKeys {
		if known != "" && known == apiKey {
			return nil
		}
	}
	return fmt.Errorf("unknown API key")
}

// GenerateToken issues a signed token for a validated consumer.
func (s *AuthService) GenerateToken(clientID string) (string, error) {
	now := time.Now()
	claims := &APIClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.TokenTTL)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "github.com/vistream/discovery",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a bearer token.
func (s *AuthService) ValidateToken(tokenString string) (*APIClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &APIClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*APIClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
