package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
	"github.com/Valeria-CPaz/app-agendamento/pkg/format"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		ID:           uuid.New(),
		Name:         format.Capitalize(req.Name),
		LastName:     format.Capitalize(req.LastName),
		CPF:          format.CPF(req.CPF),
		Email:        req.Email,
		Phone:        format.Phone(req.Phone),
		SessionValue: req.SessionValue,
		IsSocial:     req.IsSocial,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.validatePatient(patient); err != nil {
		return nil, fmt.Errorf("invalid patient data: %w", err)
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if req.Name != nil {
		patient.Name = format.Capitalize(*req.Name)
	}
	if req.LastName != nil {
		patient.LastName = format.Capitalize(*req.LastName)
	}
	if req.CPF != nil {
		patient.CPF = format.CPF(*req.CPF)
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Phone != nil {
		patient.Phone = format.Phone(*req.Phone)
	}
	if req.SessionValue != nil {
		patient.SessionValue = *req.SessionValue
	}
	if req.IsSocial != nil {
		patient.IsSocial = *req.IsSocial
	}

	if err := s.validatePatient(patient); err != nil {
		return nil, fmt.Errorf("invalid patient data: %w", err)
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) validatePatient(patient *model.Patient) error {
	if patient.Name == "" {
		return fmt.Errorf("name is required")
	}

	if patient.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if !format.IsValidPhone(patient.Phone) {
		return fmt.Errorf("invalid phone number")
	}

	if patient.CPF != "" && !format.IsValidCPF(patient.CPF) {
		return fmt.Errorf("invalid CPF")
	}

	if patient.SessionValue < 0 {
		return fmt.Errorf("session value cannot be negative")
	}

	return nil
}
