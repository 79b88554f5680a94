package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// The table holds a single row keyed by a fixed id; Save upserts it.
func (r *settingsRepository) Get(ctx context.Context) (*model.UserSettings, error) {
	query := `
		SELECT name, last_name, email, password_hash, full_price,
			   theme, fingerprint_enabled, updated_at
		FROM user_settings
		WHERE id = 1
	`
	var settings model.UserSettings
	err := r.db.GetContext(ctx, &settings, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *model.UserSettings) error {
	query := `
		INSERT INTO user_settings (
			id, name, last_name, email, password_hash, full_price,
			theme, fingerprint_enabled, updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			full_price = EXCLUDED.full_price,
			theme = EXCLUDED.theme,
			fingerprint_enabled = EXCLUDED.fingerprint_enabled,
			updated_at = EXCLUDED.updated_at
	`
	settings.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		settings.Name,
		settings.LastName,
		settings.Email,
		settings.PasswordHash,
		settings.FullPrice,
		settings.Theme,
		settings.FingerprintEnabled,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
