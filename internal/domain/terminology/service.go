package terminology

import (
	"context"
	"fmt"
)

// Service answers classification code searches for the diagnosis picker.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validCodeTypes = map[string]bool{
	CodeTypeICD10: true, CodeTypeICD11: true,
}

// Search returns codes of the given type matching the query text.
func (s *Service) Search(ctx context.Context, codeType, query string, limit int) ([]*ClassificationCode, error) {
	if !validCodeTypes[codeType] {
		return nil, fmt.Errorf("invalid code type: %s", codeType)
	}
	if query == "" {
		return nil, fmt.Errorf("search parameter is required")
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.Search(ctx, codeType, query, limit)
}

// Lookup returns a single code of the given type.
func (s *Service) Lookup(ctx context.Context, codeType, code string) (*ClassificationCode, error) {
	if !validCodeTypes[codeType] {
		return nil, fmt.Errorf("invalid code type: %s", codeType)
	}
	if code == "" {
		return nil, fmt.Errorf("code is required")
	}
	return s.repo.GetByCode(ctx, codeType, code)
}
