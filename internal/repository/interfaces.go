package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
)

// ErrNotFound is returned by Get operations when no record matches.
var ErrNotFound = errors.New("record not found")

type (
	// AppointmentRepository persists the appointment collection. List
	// returns appointments in chronological order (date, then start
	// time); the date range in the filters is inclusive on both ends.
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
	}

	// PatientRepository persists the patient directory.
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	// SettingsRepository persists the single local user profile.
	SettingsRepository interface {
		Get(ctx context.Context) (*model.UserSettings, error)
		Save(ctx context.Context, settings *model.UserSettings) error
	}
)
