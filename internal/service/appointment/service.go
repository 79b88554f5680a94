package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
)

type Service struct {
	repo     repository.AppointmentRepository
	patients repository.PatientRepository
}

func NewService(repo repository.AppointmentRepository, patients repository.PatientRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
	}
}

// CreateAppointment persists a new session. Double-booking is allowed:
// two appointments may share the same date and start time. When the
// request carries no patient name snapshot, the current directory name
// is captured at creation time.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validateTimes(req.Start, req.End); err != nil {
		return nil, fmt.Errorf("invalid appointment: %w", err)
	}

	status := req.Status
	if status == "" {
		status = model.AppointmentStatusPending
	}
	if !isKnownStatus(status) {
		return nil, fmt.Errorf("invalid appointment: unknown status %q", status)
	}

	apt := &model.Appointment{
		ID:          uuid.New(),
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Start:       req.Start,
		End:         req.End,
		Status:      status,
		Price:       req.Price,
		IsSocial:    req.IsSocial,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if apt.PatientName == "" {
		if patient, err := s.patients.Get(ctx, req.PatientID); err == nil {
			apt.PatientName = patient.DisplayName()
		}
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if req.Date != nil {
		apt.Date = *req.Date
	}
	if req.Start != nil {
		apt.Start = *req.Start
	}
	if req.End != nil {
		apt.End = *req.End
	}
	if req.Status != nil {
		if !isKnownStatus(*req.Status) {
			return nil, fmt.Errorf("invalid appointment: unknown status %q", *req.Status)
		}
		apt.Status = *req.Status
	}
	if req.Price != nil {
		apt.Price = req.Price
	}
	if req.IsSocial != nil {
		apt.IsSocial = req.IsSocial
	}
	if req.Notes != nil {
		apt.Notes = *req.Notes
	}

	if err := s.validateTimes(apt.Start, apt.End); err != nil {
		return nil, fmt.Errorf("invalid appointment: %w", err)
	}

	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

// ListAppointments returns sessions in the inclusive calendar range,
// ordered chronologically.
func (s *Service) ListAppointments(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	if filters != nil && !filters.From.IsZero() && !filters.To.IsZero() && filters.From.After(filters.To) {
		return nil, fmt.Errorf("invalid range: start date after end date")
	}

	appointments, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *Service) validateTimes(start, end model.ClockTime) error {
	if end.Minutes() <= start.Minutes() {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

func isKnownStatus(status model.AppointmentStatus) bool {
	switch status {
	case model.AppointmentStatusConfirmed,
		model.AppointmentStatusPending,
		model.AppointmentStatusCanceled,
		model.AppointmentStatusNoShow:
		return true
	}
	return false
}
