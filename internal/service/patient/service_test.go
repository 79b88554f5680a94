package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
)

type memPatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func newMemPatientRepo() *memPatientRepo {
	return &memPatientRepo{patients: make(map[uuid.UUID]*model.Patient)}
}

func (m *memPatientRepo) Create(ctx context.Context, p *model.Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *memPatientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (m *memPatientRepo) Update(ctx context.Context, p *model.Patient) error {
	if _, ok := m.patients[p.ID]; !ok {
		return repository.ErrNotFound
	}
	m.patients[p.ID] = p
	return nil
}

func (m *memPatientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.patients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.patients, id)
	return nil
}

func (m *memPatientRepo) List(ctx context.Context) ([]*model.Patient, error) {
	out := make([]*model.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		out = append(out, p)
	}
	return out, nil
}

func validCreateRequest() *model.CreatePatientRequest {
	return &model.CreatePatientRequest{
		Name:         "ana",
		LastName:     "SILVA",
		Phone:        "11987654321",
		CPF:          "52998224725",
		SessionValue: 150,
	}
}

func TestCreatePatientNormalizesFields(t *testing.T) {
	svc := NewService(newMemPatientRepo())

	created, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, "Silva", created.LastName)
	assert.Equal(t, "(11) 98765-4321", created.Phone)
	assert.Equal(t, "529.982.247-25", created.CPF)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreatePatientRejectsInvalidCPF(t *testing.T) {
	svc := NewService(newMemPatientRepo())

	req := validCreateRequest()
	req.CPF = "111.111.111-11"

	_, err := svc.CreatePatient(context.Background(), req)
	assert.Error(t, err)
}

func TestCreatePatientAllowsEmptyCPF(t *testing.T) {
	svc := NewService(newMemPatientRepo())

	req := validCreateRequest()
	req.CPF = ""

	_, err := svc.CreatePatient(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreatePatientRequiresPhone(t *testing.T) {
	svc := NewService(newMemPatientRepo())

	req := validCreateRequest()
	req.Phone = ""

	_, err := svc.CreatePatient(context.Background(), req)
	assert.Error(t, err)
}

func TestCreatePatientRejectsNegativeSessionValue(t *testing.T) {
	svc := NewService(newMemPatientRepo())

	req := validCreateRequest()
	req.SessionValue = -10

	_, err := svc.CreatePatient(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdatePatientPartial(t *testing.T) {
	svc := NewService(newMemPatientRepo())

	created, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)

	newValue := 200.0
	updated, err := svc.UpdatePatient(context.Background(), created.ID, &model.UpdatePatientRequest{
		SessionValue: &newValue,
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, updated.SessionValue)
	assert.Equal(t, "Ana", updated.Name, "untouched fields survive")
}

func TestGetPatientNotFound(t *testing.T) {
	svc := NewService(newMemPatientRepo())

	_, err := svc.GetPatient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
