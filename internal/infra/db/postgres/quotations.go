package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"furnisure/backend/internal/domain/quotation"
)

const uniqueViolation = "23505"

const quotationColumns = `
	id, quotation_no, client_name, client_address, client_contact, date, items,
	subtotal, discount, net_amount, cgst, sgst, grand_total, advance, remaining_amount,
	created_at, updated_at`

// newestFirst breaks created_at ties by the numeric part of quotation_no.
const newestFirst = ` created_at DESC, length(quotation_no) DESC, quotation_no DESC`

type QuotationStore struct {
	db *DB
}

func NewQuotationStore(db *DB) *QuotationStore {
	return &QuotationStore{db: db}
}

func (s *QuotationStore) Insert(ctx context.Context, q quotation.Quotation) (quotation.Quotation, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	items, err := json.Marshal(itemsOrEmpty(q.Items))
	if err != nil {
		return quotation.Quotation{}, err
	}

	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO quotations (
			id, quotation_no, client_name, client_address, client_contact, date, items,
			subtotal, discount, net_amount, cgst, sgst, grand_total, advance, remaining_amount,
			created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,COALESCE($6, now()),$7,$8,$9,$10,$11,$12,$13,$14,$15,now(),now())
		RETURNING`+quotationColumns,
		q.ID, q.QuotationNo, q.ClientName, q.ClientAddress, q.ClientContact, nullTime(q), items,
		q.Subtotal, q.Discount, q.NetAmount, q.CGST, q.SGST, q.GrandTotal, q.Advance, q.RemainingAmount,
	)
	created, err := scanQuotation(row)
	if err != nil {
		return quotation.Quotation{}, insertError(err)
	}
	return created, nil
}

func insertError(err error) error {
	if isUniqueViolation(err) {
		return quotation.ErrDuplicateKey
	}
	return err
}

func (s *QuotationStore) FindByID(ctx context.Context, id string) (quotation.Quotation, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return quotation.Quotation{}, quotation.ErrNotFound
	}
	row := s.db.Pool.QueryRow(ctx, `SELECT`+quotationColumns+` FROM quotations WHERE id = $1`, uid)
	q, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quotation.Quotation{}, quotation.ErrNotFound
		}
		return quotation.Quotation{}, err
	}
	return q, nil
}

func (s *QuotationStore) FindAll(ctx context.Context) ([]quotation.Quotation, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT`+quotationColumns+` FROM quotations ORDER BY`+newestFirst)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]quotation.Quotation, 0, 32)
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *QuotationStore) FindMostRecent(ctx context.Context) (*quotation.Quotation, error) {
	row := s.db.Pool.QueryRow(ctx, `SELECT`+quotationColumns+` FROM quotations ORDER BY`+newestFirst+` LIMIT 1`)
	q, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (s *QuotationStore) UpdateByID(ctx context.Context, id string, q quotation.Quotation) (quotation.Quotation, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return quotation.Quotation{}, quotation.ErrNotFound
	}
	items, err := json.Marshal(itemsOrEmpty(q.Items))
	if err != nil {
		return quotation.Quotation{}, err
	}

	row := s.db.Pool.QueryRow(ctx, `
		UPDATE quotations
		SET client_name = $2, client_address = $3, client_contact = $4, items = $5,
			subtotal = $6, discount = $7, net_amount = $8, cgst = $9, sgst = $10,
			grand_total = $11, advance = $12, remaining_amount = $13, updated_at = now()
		WHERE id = $1
		RETURNING`+quotationColumns,
		uid, q.ClientName, q.ClientAddress, q.ClientContact, items,
		q.Subtotal, q.Discount, q.NetAmount, q.CGST, q.SGST, q.GrandTotal, q.Advance, q.RemainingAmount,
	)
	updated, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quotation.Quotation{}, quotation.ErrNotFound
		}
		return quotation.Quotation{}, err
	}
	return updated, nil
}

func (s *QuotationStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, uid)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAll empties the table. Only the seed command uses it.
func (s *QuotationStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM quotations`)
	return err
}

func scanQuotation(row pgx.Row) (quotation.Quotation, error) {
	var (
		q     quotation.Quotation
		id    uuid.UUID
		items []byte
	)
	err := row.Scan(
		&id, &q.QuotationNo, &q.ClientName, &q.ClientAddress, &q.ClientContact, &q.Date, &items,
		&q.Subtotal, &q.Discount, &q.NetAmount, &q.CGST, &q.SGST, &q.GrandTotal, &q.Advance, &q.RemainingAmount,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return quotation.Quotation{}, err
	}
	q.ID = id.String()
	if len(items) > 0 {
		if err := json.Unmarshal(items, &q.Items); err != nil {
			return quotation.Quotation{}, fmt.Errorf("decode items of %s: %w", q.QuotationNo, err)
		}
	}
	return q, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func itemsOrEmpty(items []quotation.Item) []quotation.Item {
	if items == nil {
		return []quotation.Item{}
	}
	return items
}

func nullTime(q quotation.Quotation) any {
	if q.Date.IsZero() {
		return nil
	}
	return q.Date
}
