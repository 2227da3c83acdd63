package terminology

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nemsas/claims/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) Search(ctx context.Context, codeType, query string, limit int) ([]*ClassificationCode, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + query + "%"
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT code, name, code_type
		 FROM classification_code
		 WHERE code_type = $1 AND (code ILIKE $2 OR name ILIKE $2)
		 ORDER BY code LIMIT $3`, codeType, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("classification code search: %w", err)
	}
	defer rows.Close()

	var results []*ClassificationCode
	for rows.Next() {
		var c ClassificationCode
		if err := rows.Scan(&c.Code, &c.Name, &c.CodeType); err != nil {
			return nil, err
		}
		results = append(results, &c)
	}
	return results, rows.Err()
}

func (r *repoPG) GetByCode(ctx context.Context, codeType, code string) (*ClassificationCode, error) {
	var c ClassificationCode
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT code, name, code_type
		 FROM classification_code WHERE code_type = $1 AND code = $2`, codeType, code).
		Scan(&c.Code, &c.Name, &c.CodeType)
	if err != nil {
		return nil, fmt.Errorf("classification code get: %w", err)
	}
	return &c, nil
}
