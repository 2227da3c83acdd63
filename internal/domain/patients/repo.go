package patients

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByHospitalNumber(ctx context.Context, providerID uuid.UUID, hospitalNumber string) (*Patient, error)
}
