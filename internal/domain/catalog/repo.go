package catalog

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	SearchProducts(ctx context.Context, f ProductFilter, limit, offset int) ([]*Product, int, error)

	ListDepartments(ctx context.Context) ([]*Department, error)
	ListServiceCategories(ctx context.Context) ([]*ServiceCategory, error)
}
