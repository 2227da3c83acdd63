package catalog

import (
	"context"
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

var validCategories = map[string]bool{
	CategoryClinical: true, CategoryNonClinical: true, CategoryLaboratory: true,
	CategoryImaging: true, CategorySurgical: true, CategoryMedication: true,
}

func (s *Service) CreateProduct(ctx context.Context, p *Product) error {
	if p.ProviderID == uuid.Nil {
		return fmt.Errorf("providerId is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.Code) == "" {
		return fmt.Errorf("code is required")
	}
	if !validCategories[p.ProductCategory] {
		return fmt.Errorf("invalid product category: %s", p.ProductCategory)
	}
	if p.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if p.NHISPercentage < 0 || p.NHISPercentage > 100 {
		return fmt.Errorf("nhisPercentage must be between 0 and 100")
	}
	p.IsActive = true
	return s.repo.CreateProduct(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) SearchProducts(ctx context.Context, f ProductFilter, limit, offset int) ([]*Product, int, error) {
	if f.Category != "" && !validCategories[f.Category] {
		return nil, 0, fmt.Errorf("invalid product category: %s", f.Category)
	}
	return s.repo.SearchProducts(ctx, f, limit, offset)
}

func (s *Service) ListDepartments(ctx context.Context) ([]*Department, error) {
	return s.repo.ListDepartments(ctx)
}

func (s *Service) ListServiceCategories(ctx context.Context) ([]*ServiceCategory, error) {
	return s.repo.ListServiceCategories(ctx)
}
