package patients

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nemsas/claims/internal/platform/db"
)

// ErrNotFound is returned when no patient matches the lookup.
var ErrNotFound = errors.New("patient not found")

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

const patientCols = `id, provider_id, hospital_number, first_name, last_name,
	insurance_status, date_of_birth, gender, address, email, phone_number, created_date`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.ProviderID, &p.HospitalNumber, &p.FirstName, &p.LastName,
		&p.InsuranceStatus, &p.DateOfBirth, &p.Gender, &p.Address, &p.Email, &p.PhoneNumber, &p.CreatedDate)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patient (id, provider_id, hospital_number, first_name, last_name,
			insurance_status, date_of_birth, gender, address, email, phone_number)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.ProviderID, p.HospitalNumber, p.FirstName, p.LastName,
		p.InsuranceStatus, p.DateOfBirth, p.Gender, p.Address, p.Email, p.PhoneNumber)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id)
	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (r *repoPG) GetByHospitalNumber(ctx context.Context, providerID uuid.UUID, hospitalNumber string) (*Patient, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE provider_id = $1 AND hospital_number = $2`,
		providerID, hospitalNumber)
	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get patient by hospital number: %w", err)
	}
	return p, nil
}
