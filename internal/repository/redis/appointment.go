package redis

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
)

type appointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) repository.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) load(ctx context.Context) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	if err := r.store.loadCollection(ctx, appointmentsKey, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()
	all = append(all, appointment)

	return r.store.saveCollection(ctx, appointmentsKey, all)
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range all {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, a := range all {
		if a.ID == appointment.ID {
			appointment.CreatedAt = a.CreatedAt
			appointment.UpdatedAt = time.Now()
			all[i] = appointment
			return r.store.saveCollection(ctx, appointmentsKey, all)
		}
	}
	return repository.ErrNotFound
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	next := all[:0]
	found := false
	for _, a := range all {
		if a.ID == id {
			found = true
			continue
		}
		next = append(next, a)
	}
	if !found {
		return repository.ErrNotFound
	}
	return r.store.saveCollection(ctx, appointmentsKey, next)
}

// List filters in memory by calendar-date ordinal (the wire form is not
// lexically sortable) and returns chronological order: date, then start.
func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Appointment, 0, len(all))
	for _, a := range all {
		if filters != nil {
			if !filters.From.IsZero() && a.Date.Before(filters.From) {
				continue
			}
			if !filters.To.IsZero() && a.Date.After(filters.To) {
				continue
			}
			if filters.PatientID != uuid.Nil && a.PatientID != filters.PatientID {
				continue
			}
			if filters.Status != "" && a.Status != filters.Status {
				continue
			}
		}
		matched = append(matched, a)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date.Ordinal() != matched[j].Date.Ordinal() {
			return matched[i].Date.Ordinal() < matched[j].Date.Ordinal()
		}
		return matched[i].Start.Minutes() < matched[j].Start.Minutes()
	})
	return matched, nil
}
