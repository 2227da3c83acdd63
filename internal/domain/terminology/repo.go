package terminology

import "context"

// Repository provides access to the classification code reference tables.
type Repository interface {
	Search(ctx context.Context, codeType, query string, limit int) ([]*ClassificationCode, error)
	GetByCode(ctx context.Context, codeType, code string) (*ClassificationCode, error)
}
