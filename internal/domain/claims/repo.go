package claims

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id uuid.UUID) (*Claim, error)
	Update(ctx context.Context, c *Claim) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f ListFilter, limit, offset int) ([]*Claim, int, error)
	// Items
	ReplaceItems(ctx context.Context, claimID uuid.UUID, items []ClaimItem) error
	GetItems(ctx context.Context, claimID uuid.UUID) ([]ClaimItem, error)
}
