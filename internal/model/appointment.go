package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmado"
	AppointmentStatusPending   AppointmentStatus = "pendente"
	AppointmentStatusCanceled  AppointmentStatus = "cancelado"
	AppointmentStatusNoShow    AppointmentStatus = "faltou"
)

// Appointment is a scheduled session. PatientName, Price and IsSocial are
// snapshots taken at creation/edit time and are not re-synchronized when
// the patient record changes. PatientID may reference a patient that has
// since been deleted; joins must treat that as "no match".
type Appointment struct {
	ID          uuid.UUID         `db:"id" json:"id"`
	PatientID   uuid.UUID         `db:"patient_id" json:"patient_id"`
	PatientName string            `db:"patient_name" json:"patient_name"`
	Date        CalendarDate      `db:"date" json:"date"`
	Start       ClockTime         `db:"start_time" json:"start"`
	End         ClockTime         `db:"end_time" json:"end"`
	Status      AppointmentStatus `db:"status" json:"status"`
	Price       *float64          `db:"price" json:"price,omitempty"`
	IsSocial    *bool             `db:"is_social" json:"is_social,omitempty"`
	Notes       string            `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}

// StartsAt joins Date and Start into an instant for period filtering.
// ok is false when the appointment carries no usable date.
func (a *Appointment) StartsAt() (time.Time, bool) {
	if a.Date.IsZero() {
		return time.Time{}, false
	}
	return a.Date.Time(a.Start), true
}

type CreateAppointmentRequest struct {
	PatientID   uuid.UUID         `json:"patient_id" binding:"required"`
	PatientName string            `json:"patient_name"`
	Date        CalendarDate      `json:"date" binding:"required"`
	Start       ClockTime         `json:"start"`
	End         ClockTime         `json:"end"`
	Status      AppointmentStatus `json:"status"`
	Price       *float64          `json:"price"`
	IsSocial    *bool             `json:"is_social"`
	Notes       string            `json:"notes" binding:"max=1000"`
}

type UpdateAppointmentRequest struct {
	Date     *CalendarDate      `json:"date"`
	Start    *ClockTime         `json:"start"`
	End      *ClockTime         `json:"end"`
	Status   *AppointmentStatus `json:"status"`
	Price    *float64           `json:"price"`
	IsSocial *bool              `json:"is_social"`
	Notes    *string            `json:"notes"`
}

// AppointmentFilters scopes a listing to an inclusive calendar-date range.
type AppointmentFilters struct {
	From      CalendarDate
	To        CalendarDate
	PatientID uuid.UUID
	Status    AppointmentStatus
}
