package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
	"github.com/Valeria-CPaz/app-agendamento/pkg/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service authenticates the practitioner against the stored profile and
// issues signed access tokens. There is a single local account, so the
// subject is always the settings email.
type Service struct {
	settings repository.SettingsRepository
	hasher   security.PasswordHasher
	secret   []byte
	expiry   time.Duration
}

func NewService(settings repository.SettingsRepository, hasher security.PasswordHasher, secret string, expiry time.Duration) *Service {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Service{
		settings: settings,
		hasher:   hasher,
		secret:   []byte(secret),
		expiry:   expiry,
	}
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if settings.Email != req.Email {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(settings.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.expiry)
	claims := &Claims{
		Email: settings.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   settings.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &model.TokenResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
