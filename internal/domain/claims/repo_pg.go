package claims

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

const claimCols = `id, nemsas_id, provider_id, claim_name, patient_name, patient_number,
	phone_number, service_type, discharge_type, service_date, discharge_date,
	status, total_amount, created_date, updated_at`

// sortColumns whitelists the client-facing sort keys. Anything else falls
// back to createdDate.
var sortColumns = map[string]string{
	"createdDate": "created_date",
	"serviceDate": "service_date",
	"claimName":   "claim_name",
}

func (r *repoPG) scanClaim(row pgx.Row) (*Claim, error) {
	var c Claim
	err := row.Scan(&c.ID, &c.NEMSASID, &c.ProviderID, &c.ClaimName, &c.PatientName, &c.PatientNumber,
		&c.PhoneNumber, &c.ServiceType, &c.DischargeType, &c.ServiceDate, &c.DischargeDate,
		&c.Status, &c.TotalAmount, &c.CreatedDate, &c.UpdatedAt)
	return &c, err
}

func (r *repoPG) Create(ctx context.Context, c *Claim) error {
	c.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO nemsas_claim (id, nemsas_id, provider_id, claim_name, patient_name, patient_number,
			phone_number, service_type, discharge_type, service_date, discharge_date,
			status, total_amount)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ID, c.NEMSASID, c.ProviderID, c.ClaimName, c.PatientName, c.PatientNumber,
		c.PhoneNumber, c.ServiceType, c.DischargeType, c.ServiceDate, c.DischargeDate,
		c.Status, c.TotalAmount)
	if err != nil {
		return err
	}
	return r.ReplaceItems(ctx, c.ID, c.Items)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Claim, error) {
	c, err := r.scanClaim(r.conn(ctx).QueryRow(ctx, `SELECT `+claimCols+` FROM nemsas_claim WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	items, err := r.GetItems(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return c, nil
}

func (r *repoPG) Update(ctx context.Context, c *Claim) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE nemsas_claim SET claim_name=$2, patient_name=$3, patient_number=$4,
			phone_number=$5, service_type=$6, discharge_type=$7,
			service_date=$8, discharge_date=$9, status=$10, total_amount=$11, updated_at=NOW()
		WHERE id = $1`,
		c.ID, c.ClaimName, c.PatientName, c.PatientNumber,
		c.PhoneNumber, c.ServiceType, c.DischargeType,
		c.ServiceDate, c.DischargeDate, c.Status, c.TotalAmount)
	if err != nil {
		return err
	}
	return r.ReplaceItems(ctx, c.ID, c.Items)
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM nemsas_claim_item WHERE claim_id = $1`, id); err != nil {
		return err
	}
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM nemsas_claim WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, f ListFilter, limit, offset int) ([]*Claim, int, error) {
	where := []string{"1=1"}
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.ProviderID != uuid.Nil {
		where = append(where, "provider_id = "+arg(f.ProviderID))
	}
	if f.NEMSASID != "" {
		where = append(where, "nemsas_id = "+arg(f.NEMSASID))
	}
	if f.ClaimStatus != "" {
		where = append(where, "status = "+arg(f.ClaimStatus))
	}
	if f.PatientNumber != "" {
		where = append(where, "patient_number = "+arg(f.PatientNumber))
	}
	if f.StartDate != nil {
		where = append(where, "created_date >= "+arg(*f.StartDate))
	}
	if f.EndDate != nil {
		where = append(where, "created_date <= "+arg(*f.EndDate))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM nemsas_claim WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderCol, ok := sortColumns[f.SortBy]
	if !ok {
		orderCol = "created_date"
	}
	query := fmt.Sprintf(`SELECT %s FROM nemsas_claim WHERE %s ORDER BY %s DESC LIMIT %s OFFSET %s`,
		claimCols, cond, orderCol, arg(limit), arg(offset))
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Claim
	for rows.Next() {
		c, err := r.scanClaim(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, c := range items {
		claimItems, err := r.GetItems(ctx, c.ID)
		if err != nil {
			return nil, 0, err
		}
		c.Items = claimItems
	}
	return items, total, nil
}

// ReplaceItems rewrites the full item set for a claim. Item statuses persist
// in raw wire form: status_code for numeric-born items, status_text for the
// rest, and legacy_field marks rows that predate the claimStatus field so a
// read reproduces the exact JSON shape the row was written with.
func (r *repoPG) ReplaceItems(ctx context.Context, claimID uuid.UUID, items []ClaimItem) error {
	if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM nemsas_claim_item WHERE claim_id = $1`, claimID); err != nil {
		return err
	}
	for i := range items {
		it := &items[i]
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		var statusCode *int
		var statusText *string
		legacy := it.Status.IsAbsent() && !it.LegacyStatus.IsAbsent()
		switch st := it.WireStatus(); st.Kind {
		case StatusNumeric:
			code := st.Code
			statusCode = &code
		case StatusText:
			text := st.Text
			statusText = &text
		}
		_, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO nemsas_claim_item (id, claim_id, position, name, amount, claim_type, quantity, status_code, status_text, legacy_field)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			it.ID, claimID, i, it.Name, it.Amount, it.ClaimType, it.Quantity, statusCode, statusText, legacy)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) GetItems(ctx context.Context, claimID uuid.UUID) ([]ClaimItem, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, claim_id, name, amount, claim_type, quantity, status_code, status_text, legacy_field
		FROM nemsas_claim_item WHERE claim_id = $1 ORDER BY position`, claimID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]ClaimItem, 0)
	for rows.Next() {
		var it ClaimItem
		var statusCode *int
		var statusText *string
		var legacy bool
		if err := rows.Scan(&it.ID, &it.ClaimID, &it.Name, &it.Amount, &it.ClaimType, &it.Quantity, &statusCode, &statusText, &legacy); err != nil {
			return nil, err
		}
		var st StatusValue
		switch {
		case statusCode != nil:
			st = NumericStatus(*statusCode)
		case statusText != nil:
			st = TextStatus(*statusText)
		}
		if legacy {
			it.LegacyStatus = st
		} else {
			it.Status = st
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
