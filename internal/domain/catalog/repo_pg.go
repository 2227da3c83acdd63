package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nemsas/claims/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const productCols = `id, provider_id, code, name, description, type, product_category,
	price, nhis_percentage, is_covered, is_active, created_date`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.ProviderID, &p.Code, &p.Name, &p.Description, &p.Type,
		&p.ProductCategory, &p.Price, &p.NHISPercentage, &p.IsCovered, &p.IsActive, &p.CreatedDate)
	return &p, err
}

func (r *repoPG) CreateProduct(ctx context.Context, p *Product) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO product (id, provider_id, code, name, description, type, product_category,
			price, nhis_percentage, is_covered, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.ProviderID, p.Code, p.Name, p.Description, p.Type, p.ProductCategory,
		p.Price, p.NHISPercentage, p.IsCovered, p.IsActive)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *repoPG) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+productCols+` FROM product WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *repoPG) SearchProducts(ctx context.Context, f ProductFilter, limit, offset int) ([]*Product, int, error) {
	where := []string{"is_active = TRUE"}
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		where = append(where, fmt.Sprintf("(name ILIKE %s OR code ILIKE %s)", p, p))
	}
	if f.Category != "" {
		where = append(where, "product_category = "+arg(f.Category))
	}
	if f.Type != "" {
		where = append(where, "type = "+arg(f.Type))
	}
	if f.IsCovered != nil {
		where = append(where, "is_covered = "+arg(*f.IsCovered))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM product WHERE `+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productCols + ` FROM product WHERE ` + whereClause +
		` ORDER BY name ASC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *repoPG) ListDepartments(ctx context.Context) ([]*Department, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, provider_id, name, description, department_type, is_active, created_date
		FROM department WHERE is_active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var departments []*Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.ProviderID, &d.Name, &d.Description,
			&d.DepartmentType, &d.IsActive, &d.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, &d)
	}
	return departments, rows.Err()
}

func (r *repoPG) ListServiceCategories(ctx context.Context) ([]*ServiceCategory, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, name, description, is_active, created_date
		FROM service_category WHERE is_active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list service categories: %w", err)
	}
	defer rows.Close()

	var categories []*ServiceCategory
	for rows.Next() {
		var sc ServiceCategory
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Description, &sc.IsActive, &sc.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan service category: %w", err)
		}
		categories = append(categories, &sc)
	}
	return categories, rows.Err()
}
