package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
	apperrors "github.com/Valeria-CPaz/app-agendamento/pkg/errors"
)

type fakeAppointmentRepo struct {
	appointments []*model.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *model.Appointment) error { return nil }
func (f *fakeAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeAppointmentRepo) Update(ctx context.Context, a *model.Appointment) error { return nil }
func (f *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }

func (f *fakeAppointmentRepo) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	out := make([]*model.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		if filters != nil {
			if !filters.From.IsZero() && a.Date.Before(filters.From) {
				continue
			}
			if !filters.To.IsZero() && a.Date.After(filters.To) {
				continue
			}
		}
		out = append(out, a)
	}
	return out, nil
}

type fakePatientRepo struct {
	patients []*model.Patient
}

func (f *fakePatientRepo) Create(ctx context.Context, p *model.Patient) error { return nil }
func (f *fakePatientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	for _, p := range f.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (f *fakePatientRepo) Update(ctx context.Context, p *model.Patient) error { return nil }
func (f *fakePatientRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakePatientRepo) List(ctx context.Context) ([]*model.Patient, error) {
	return f.patients, nil
}

func june(day int) model.CalendarDate {
	return model.CalendarDate{Year: 2024, Month: 6, Day: day}
}

func scheduled(p *model.Patient, day int, status model.AppointmentStatus) *model.Appointment {
	return &model.Appointment{
		ID:        uuid.New(),
		PatientID: p.ID,
		Date:      june(day),
		Start:     model.ClockTime{Hour: 10},
		End:       model.ClockTime{Hour: 11},
		Status:    status,
	}
}

func junePeriod() model.Period {
	return model.Period{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local),
	}
}

func TestGenerateFullReport(t *testing.T) {
	ana := newPatient("Ana", "Silva", 100, false)
	bia := newPatient("Bia", "Rocha", 60, true)

	appointments := &fakeAppointmentRepo{appointments: []*model.Appointment{
		scheduled(ana, 3, model.AppointmentStatusConfirmed),
		scheduled(ana, 10, model.AppointmentStatusConfirmed),
		scheduled(bia, 12, model.AppointmentStatusConfirmed),
		scheduled(bia, 20, model.AppointmentStatusCanceled),
		scheduled(ana, 25, model.AppointmentStatusNoShow),
	}}
	patients := &fakePatientRepo{patients: []*model.Patient{ana, bia}}

	svc := NewService(appointments, patients)

	got, err := svc.Generate(context.Background(), junePeriod(), model.ReportOptions{
		IncludeTotals:       true,
		IncludeSocialVsFull: true,
	})
	require.NoError(t, err)

	require.NotNil(t, got.Totals)
	assert.Equal(t, 5, got.Totals.SessionCount, "every lifecycle state counts toward totals")
	assert.Equal(t, 2, got.Totals.CanceledCount, "cancellations include no-shows")
	assert.Equal(t, 260.0, got.Totals.TotalRevenue, "only confirmed sessions generate revenue")

	require.NotNil(t, got.Social)
	assert.Equal(t, 200.0, got.Social.FullRevenue)
	assert.Equal(t, 60.0, got.Social.SocialRevenue)
	assert.InDelta(t, got.Social.TotalRevenue, got.Social.SocialRevenue+got.Social.FullRevenue, 1e-9)

	// Per-patient rows count all statuses at the current session value.
	require.Len(t, got.Patients, 2)
	assert.Equal(t, "Ana Silva", got.Patients[0].Name)
	assert.Equal(t, 3, got.Patients[0].TotalSessions)
	assert.Equal(t, 300.0, got.Patients[0].TotalAmount)
	assert.Equal(t, "Bia Rocha", got.Patients[1].Name)
	assert.Equal(t, 2, got.Patients[1].TotalSessions)

	assert.Contains(t, got.Text, "RELATÓRIO DE AGENDAMENTOS")
}

func TestGenerateRespectsToggles(t *testing.T) {
	ana := newPatient("Ana", "Silva", 100, false)
	appointments := &fakeAppointmentRepo{appointments: []*model.Appointment{
		scheduled(ana, 5, model.AppointmentStatusConfirmed),
	}}
	patients := &fakePatientRepo{patients: []*model.Patient{ana}}

	svc := NewService(appointments, patients)

	got, err := svc.Generate(context.Background(), junePeriod(), model.ReportOptions{})
	require.NoError(t, err)

	assert.Nil(t, got.Totals)
	assert.Nil(t, got.Social)
	assert.Len(t, got.Patients, 1, "per-patient breakdown is always computed")
}

func TestGenerateExcludesAppointmentsOutsidePeriod(t *testing.T) {
	ana := newPatient("Ana", "Silva", 100, false)

	inside := scheduled(ana, 30, model.AppointmentStatusConfirmed)
	inside.Start = model.ClockTime{Hour: 23, Minute: 59}

	outside := scheduled(ana, 30, model.AppointmentStatusConfirmed)
	outside.Date = model.CalendarDate{Year: 2024, Month: 7, Day: 1}
	outside.Start = model.ClockTime{}

	appointments := &fakeAppointmentRepo{appointments: []*model.Appointment{inside, outside}}
	patients := &fakePatientRepo{patients: []*model.Patient{ana}}

	svc := NewService(appointments, patients)

	got, err := svc.Generate(context.Background(), junePeriod(), model.ReportOptions{IncludeTotals: true})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Totals.SessionCount)
}

func TestGenerateInvertedPeriodFails(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakePatientRepo{})

	_, err := svc.Generate(context.Background(), model.Period{
		Start: time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local),
		End:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
	}, model.ReportOptions{})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestGenerateSingleDayPeriod(t *testing.T) {
	ana := newPatient("Ana", "Silva", 100, false)
	appointments := &fakeAppointmentRepo{appointments: []*model.Appointment{
		scheduled(ana, 15, model.AppointmentStatusConfirmed),
	}}
	patients := &fakePatientRepo{patients: []*model.Patient{ana}}

	svc := NewService(appointments, patients)

	day := time.Date(2024, 6, 15, 14, 0, 0, 0, time.Local)
	got, err := svc.Generate(context.Background(), model.Period{Start: day, End: day}, model.ReportOptions{IncludeTotals: true})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Totals.SessionCount)
}
