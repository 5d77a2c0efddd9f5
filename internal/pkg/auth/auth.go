package auth

import (
	"fmt"

	"github.com/GLCRealm/cyber-lane-reservations/config"

	"github.com/golang-jwt/jwt/v5"
)

type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Provider resolves the caller behind an access token.
type Provider interface {
	CurrentUser(token string) (*Identity, error)
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type jwtProvider struct {
	secret   []byte
	audience string
}

func New(cfg *config.AuthConfig) Provider {
	return &jwtProvider{
		secret:   []byte(cfg.JWTSecret),
		audience: cfg.Audience,
	}
}

func (p *jwtProvider) CurrentUser(token string) (*Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if p.audience != "" {
		opts = append(opts, jwt.WithAudience(p.audience))
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token")
	}

	return &Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
