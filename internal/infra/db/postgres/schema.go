package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS quotations (
	id               uuid PRIMARY KEY,
	quotation_no     text NOT NULL UNIQUE,
	client_name      text NOT NULL,
	client_address   text NOT NULL,
	client_contact   text NOT NULL,
	date             timestamptz NOT NULL DEFAULT now(),
	items            jsonb NOT NULL DEFAULT '[]'::jsonb,
	subtotal         double precision NOT NULL DEFAULT 0,
	discount         double precision NOT NULL DEFAULT 0,
	net_amount       double precision NOT NULL DEFAULT 0,
	cgst             double precision NOT NULL DEFAULT 0,
	sgst             double precision NOT NULL DEFAULT 0,
	grand_total      double precision NOT NULL DEFAULT 0,
	advance          double precision NOT NULL DEFAULT 0,
	remaining_amount double precision NOT NULL DEFAULT 0,
	created_at       timestamptz NOT NULL DEFAULT now(),
	updated_at       timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS quotations_created_at_idx ON quotations (created_at DESC);
`

// Migrate creates the quotations table when it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
