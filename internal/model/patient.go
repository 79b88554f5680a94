package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient is a directory entry. SessionValue is the price currently
// charged per session and is the fallback used by revenue joins when an
// appointment carries no price snapshot of its own.
type Patient struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	LastName     string    `db:"last_name" json:"last_name"`
	CPF          string    `db:"cpf" json:"cpf,omitempty"`
	Email        string    `db:"email" json:"email,omitempty"`
	Phone        string    `db:"phone" json:"phone"`
	SessionValue float64   `db:"session_value" json:"session_value"`
	IsSocial     bool      `db:"is_social" json:"is_social"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// DisplayName joins first and last name, trimmed.
func (p *Patient) DisplayName() string {
	return strings.TrimSpace(p.Name + " " + p.LastName)
}

type CreatePatientRequest struct {
	Name         string  `json:"name" binding:"required"`
	LastName     string  `json:"last_name"`
	CPF          string  `json:"cpf" binding:"omitempty,cpf"`
	Email        string  `json:"email" binding:"omitempty,email"`
	Phone        string  `json:"phone" binding:"required,brphone"`
	SessionValue float64 `json:"session_value" binding:"gte=0"`
	IsSocial     bool    `json:"is_social"`
}

type UpdatePatientRequest struct {
	Name         *string  `json:"name"`
	LastName     *string  `json:"last_name"`
	CPF          *string  `json:"cpf" binding:"omitempty"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Phone        *string  `json:"phone"`
	SessionValue *float64 `json:"session_value" binding:"omitempty,gte=0"`
	IsSocial     *bool    `json:"is_social"`
}
