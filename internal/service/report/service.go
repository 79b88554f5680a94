package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
	"github.com/Valeria-CPaz/app-agendamento/pkg/errors"
)

// Status sets used by the report screen. Totals count every lifecycle
// state but only confirmed sessions generate revenue; cancellations
// cover both explicit cancels and no-shows.
var (
	totalsCountStatuses = []string{
		string(model.AppointmentStatusConfirmed),
		string(model.AppointmentStatusPending),
		string(model.AppointmentStatusNoShow),
		string(model.AppointmentStatusCanceled),
	}
	revenueStatuses  = []string{string(model.AppointmentStatusConfirmed)}
	canceledStatuses = []string{
		string(model.AppointmentStatusCanceled),
		string(model.AppointmentStatusNoShow),
	}
)

type Service struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
}

func NewService(appointments repository.AppointmentRepository, patients repository.PatientRepository) *Service {
	return &Service{
		appointments: appointments,
		patients:     patients,
	}
}

// Generate computes a full report for the period. Aggregates are always
// recomputed from the current collections; nothing is cached between
// requests.
func (s *Service) Generate(ctx context.Context, period model.Period, opts model.ReportOptions) (*model.Report, error) {
	normalized := period.Normalize()
	if normalized.Start.After(normalized.End) {
		return nil, errors.BadRequest("start date cannot be after end date", nil)
	}

	appointments, err := s.appointments.List(ctx, &model.AppointmentFilters{
		From: model.CalendarDateOf(normalized.Start),
		To:   model.CalendarDateOf(normalized.End),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	filtered := FilterByPeriod(appointments, func(a *model.Appointment) (time.Time, bool) {
		return a.StartsAt()
	}, normalized)

	index := make(map[uuid.UUID]*model.Patient, len(patients))
	for _, p := range patients {
		index[p.ID] = p
	}
	priceOf := func(a *model.Appointment) float64 {
		if p := index[a.PatientID]; p != nil {
			return p.SessionValue
		}
		return 0
	}
	socialOf := func(a *model.Appointment) bool {
		if p := index[a.PatientID]; p != nil {
			return p.IsSocial
		}
		return false
	}
	statusOf := func(a *model.Appointment) string {
		return string(a.Status)
	}

	result := &model.Report{
		Period:   normalized,
		Patients: ComputeByPatient(filtered, patients),
	}

	if opts.IncludeTotals {
		totals := ComputeBasicKPIs(filtered, KPIOptions[*model.Appointment]{
			Price:            priceOf,
			Status:           statusOf,
			CountStatuses:    totalsCountStatuses,
			RevenueStatuses:  revenueStatuses,
			CanceledStatuses: canceledStatuses,
		})
		result.Totals = &totals
	}

	if opts.IncludeSocialVsFull {
		social := ComputeRevenueByPriceType(filtered, RevenueOptions[*model.Appointment]{
			Price:           priceOf,
			Status:          statusOf,
			IsSocial:        socialOf,
			CountStatuses:   revenueStatuses,
			RevenueStatuses: revenueStatuses,
		})
		result.Social = &social
	}

	result.Text = RenderText(result.Totals, result.Social, result.Patients, normalized)
	return result, nil
}
