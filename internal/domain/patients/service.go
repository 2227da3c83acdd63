package patients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a new patient. A hospital number can only be registered
// once per provider.
func (s *Service) Register(ctx context.Context, p *Patient) (*Registration, error) {
	if p.ProviderID == uuid.Nil {
		return nil, fmt.Errorf("providerId is required")
	}
	if strings.TrimSpace(p.HospitalNumber) == "" {
		return nil, fmt.Errorf("hospitalNumber is required")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return nil, fmt.Errorf("firstName is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return nil, fmt.Errorf("lastName is required")
	}
	if strings.TrimSpace(p.PhoneNumber) == "" {
		return nil, fmt.Errorf("phoneNumber is required")
	}

	existing, err := s.repo.GetByHospitalNumber(ctx, p.ProviderID, p.HospitalNumber)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("hospital number %s is already registered", p.HospitalNumber)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return &Registration{
		ID:             p.ID,
		HospitalNumber: p.HospitalNumber,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
	}, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByHospitalNumber(ctx context.Context, providerID uuid.UUID, hospitalNumber string) (*Patient, error) {
	if strings.TrimSpace(hospitalNumber) == "" {
		return nil, fmt.Errorf("hospitalNumber is required")
	}
	return s.repo.GetByHospitalNumber(ctx, providerID, hospitalNumber)
}
