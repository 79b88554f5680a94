package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
	"github.com/Valeria-CPaz/app-agendamento/pkg/security"
)

const (
	cacheKey        = "user_settings"
	cacheTTL        = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Service manages the single practitioner profile. Reads go through a
// short-lived cache; any write invalidates it.
type Service struct {
	repo   repository.SettingsRepository
	hasher security.PasswordHasher
	cache  *gocache.Cache
}

func NewService(repo repository.SettingsRepository, hasher security.PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		cache:  gocache.New(cacheTTL, cleanupInterval),
	}
}

func (s *Service) GetSettings(ctx context.Context) (*model.UserSettings, error) {
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*model.UserSettings), nil
	}

	settings, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return s.defaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	s.cache.Set(cacheKey, settings, gocache.DefaultExpiration)
	return settings, nil
}

func (s *Service) UpdateSettings(ctx context.Context, req *model.UpdateSettingsRequest) (*model.UserSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		settings.Name = *req.Name
	}
	if req.LastName != nil {
		settings.LastName = *req.LastName
	}
	if req.Email != nil {
		settings.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		settings.PasswordHash = hash
	}
	if req.FullPrice != nil {
		settings.FullPrice = *req.FullPrice
	}
	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.FingerprintEnabled != nil {
		settings.FingerprintEnabled = *req.FingerprintEnabled
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.cache.Delete(cacheKey)
	return settings, nil
}

func (s *Service) defaultSettings() *model.UserSettings {
	return &model.UserSettings{
		Theme:     model.ThemeLight,
		FullPrice: 0,
	}
}
