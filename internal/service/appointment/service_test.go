package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
)

type memAppointmentRepo struct {
	appointments map[uuid.UUID]*model.Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{appointments: make(map[uuid.UUID]*model.Appointment)}
}

func (m *memAppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	m.appointments[a.ID] = a
	return nil
}

func (m *memAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (m *memAppointmentRepo) Update(ctx context.Context, a *model.Appointment) error {
	if _, ok := m.appointments[a.ID]; !ok {
		return repository.ErrNotFound
	}
	m.appointments[a.ID] = a
	return nil
}

func (m *memAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.appointments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.appointments, id)
	return nil
}

func (m *memAppointmentRepo) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	out := make([]*model.Appointment, 0, len(m.appointments))
	for _, a := range m.appointments {
		out = append(out, a)
	}
	return out, nil
}

type memPatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func (m *memPatientRepo) Create(ctx context.Context, p *model.Patient) error { return nil }
func (m *memPatientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}
func (m *memPatientRepo) Update(ctx context.Context, p *model.Patient) error { return nil }
func (m *memPatientRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (m *memPatientRepo) List(ctx context.Context) ([]*model.Patient, error) { return nil, nil }

func validRequest(patientID uuid.UUID) *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		PatientID: patientID,
		Date:      model.CalendarDate{Year: 2024, Month: 6, Day: 15},
		Start:     model.ClockTime{Hour: 10},
		End:       model.ClockTime{Hour: 11},
		Status:    model.AppointmentStatusConfirmed,
	}
}

func TestCreateAppointmentSnapshotsPatientName(t *testing.T) {
	ana := &model.Patient{ID: uuid.New(), Name: "Ana", LastName: "Silva"}
	patients := &memPatientRepo{patients: map[uuid.UUID]*model.Patient{ana.ID: ana}}
	svc := NewService(newMemAppointmentRepo(), patients)

	created, err := svc.CreateAppointment(context.Background(), validRequest(ana.ID))
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", created.PatientName)
}

func TestCreateAppointmentDefaultsToPending(t *testing.T) {
	svc := NewService(newMemAppointmentRepo(), &memPatientRepo{})

	req := validRequest(uuid.New())
	req.Status = ""

	created, err := svc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusPending, created.Status)
}

func TestCreateAppointmentRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newMemAppointmentRepo(), &memPatientRepo{})

	req := validRequest(uuid.New())
	req.Status = "remarcado"

	_, err := svc.CreateAppointment(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateAppointmentRejectsInvertedTimes(t *testing.T) {
	svc := NewService(newMemAppointmentRepo(), &memPatientRepo{})

	req := validRequest(uuid.New())
	req.Start = model.ClockTime{Hour: 11}
	req.End = model.ClockTime{Hour: 10}

	_, err := svc.CreateAppointment(context.Background(), req)
	assert.Error(t, err)

	req.End = req.Start
	_, err = svc.CreateAppointment(context.Background(), req)
	assert.Error(t, err, "zero-length appointments are rejected too")
}

func TestCreateAppointmentAllowsDoubleBooking(t *testing.T) {
	svc := NewService(newMemAppointmentRepo(), &memPatientRepo{})

	_, err := svc.CreateAppointment(context.Background(), validRequest(uuid.New()))
	require.NoError(t, err)
	_, err = svc.CreateAppointment(context.Background(), validRequest(uuid.New()))
	require.NoError(t, err)
}

func TestUpdateAppointmentPartial(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := NewService(repo, &memPatientRepo{})

	created, err := svc.CreateAppointment(context.Background(), validRequest(uuid.New()))
	require.NoError(t, err)

	newStatus := model.AppointmentStatusCanceled
	updated, err := svc.UpdateAppointment(context.Background(), created.ID, &model.UpdateAppointmentRequest{
		Status: &newStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCanceled, updated.Status)
	assert.Equal(t, created.Date, updated.Date, "untouched fields survive")
}

func TestListAppointmentsRejectsInvertedRange(t *testing.T) {
	svc := NewService(newMemAppointmentRepo(), &memPatientRepo{})

	_, err := svc.ListAppointments(context.Background(), &model.AppointmentFilters{
		From: model.CalendarDate{Year: 2024, Month: 7, Day: 1},
		To:   model.CalendarDate{Year: 2024, Month: 6, Day: 1},
	})
	assert.Error(t, err)
}
