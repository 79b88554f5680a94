package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
)

type settingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

// storedSettings is the persisted form. The model hides the password
// hash from JSON responses, so the document needs its own shape.
type storedSettings struct {
	Name               string      `json:"name"`
	LastName           string      `json:"lastName"`
	Email              string      `json:"email"`
	PasswordHash       string      `json:"password"`
	FullPrice          float64     `json:"fullPrice"`
	Theme              model.Theme `json:"theme"`
	FingerprintEnabled bool        `json:"fingerprintEnabled"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

func (r *settingsRepository) Get(ctx context.Context) (*model.UserSettings, error) {
	raw, err := r.store.client.Get(ctx, settingsKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", settingsKey, err)
	}

	var stored storedSettings
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", settingsKey, err)
	}
	return &model.UserSettings{
		Name:               stored.Name,
		LastName:           stored.LastName,
		Email:              stored.Email,
		PasswordHash:       stored.PasswordHash,
		FullPrice:          stored.FullPrice,
		Theme:              stored.Theme,
		FingerprintEnabled: stored.FingerprintEnabled,
		UpdatedAt:          stored.UpdatedAt,
	}, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *model.UserSettings) error {
	settings.UpdatedAt = time.Now()
	return r.store.saveCollection(ctx, settingsKey, storedSettings{
		Name:               settings.Name,
		LastName:           settings.LastName,
		Email:              settings.Email,
		PasswordHash:       settings.PasswordHash,
		FullPrice:          settings.FullPrice,
		Theme:              settings.Theme,
		FingerprintEnabled: settings.FingerprintEnabled,
		UpdatedAt:          settings.UpdatedAt,
	})
}
