package redis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
)

type patientRepository struct {
	store *Store
}

func NewPatientRepository(store *Store) repository.PatientRepository {
	return &patientRepository{store: store}
}

func (r *patientRepository) load(ctx context.Context) ([]*model.Patient, error) {
	var patients []*model.Patient
	if err := r.store.loadCollection(ctx, patientsKey, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()
	all = append(all, patient)

	return r.store.saveCollection(ctx, patientsKey, all)
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, p := range all {
		if p.ID == patient.ID {
			patient.CreatedAt = p.CreatedAt
			patient.UpdatedAt = time.Now()
			all[i] = patient
			return r.store.saveCollection(ctx, patientsKey, all)
		}
	}
	return repository.ErrNotFound
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	next := all[:0]
	found := false
	for _, p := range all {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return repository.ErrNotFound
	}
	return r.store.saveCollection(ctx, patientsKey, next)
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	return r.load(ctx)
}
