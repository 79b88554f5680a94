package model

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserSettings holds the single local practitioner profile. The password
// is stored as a bcrypt hash and never returned on the wire.
type UserSettings struct {
	Name               string    `db:"name" json:"name"`
	LastName           string    `db:"last_name" json:"last_name"`
	Email              string    `db:"email" json:"email"`
	PasswordHash       string    `db:"password_hash" json:"-"`
	FullPrice          float64   `db:"full_price" json:"full_price"`
	Theme              Theme     `db:"theme" json:"theme"`
	FingerprintEnabled bool      `db:"fingerprint_enabled" json:"fingerprint_enabled"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type UpdateSettingsRequest struct {
	Name               *string  `json:"name"`
	LastName           *string  `json:"last_name"`
	Email              *string  `json:"email" binding:"omitempty,email"`
	Password           *string  `json:"password" binding:"omitempty,min=8"`
	FullPrice          *float64 `json:"full_price" binding:"omitempty,gte=0"`
	Theme              *Theme   `json:"theme" binding:"omitempty,oneof=light dark"`
	FingerprintEnabled *bool    `json:"fingerprint_enabled"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
