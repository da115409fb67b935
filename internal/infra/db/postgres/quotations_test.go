package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"furnisure/backend/internal/domain/quotation"
)

func TestInsertErrorMapsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "quotations_quotation_no_key"}, quotation.ErrDuplicateKey},
		{"wrapped unique violation", fmt.Errorf("scan: %w", &pgconn.PgError{Code: "23505"}), quotation.ErrDuplicateKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := insertError(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("insertError = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInsertErrorPassesOtherErrors(t *testing.T) {
	for _, err := range []error{
		&pgconn.PgError{Code: "23502"},
		errors.New("connection reset"),
	} {
		got := insertError(err)
		if errors.Is(got, quotation.ErrDuplicateKey) || got != err {
			t.Fatalf("insertError(%v) = %v", err, got)
		}
	}
}

func TestNonUUIDIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewQuotationStore(nil)

	if _, err := s.FindByID(ctx, "not-a-uuid"); !errors.Is(err, quotation.ErrNotFound) {
		t.Fatalf("find: %v", err)
	}
	if _, err := s.UpdateByID(ctx, "not-a-uuid", quotation.Quotation{}); !errors.Is(err, quotation.ErrNotFound) {
		t.Fatalf("update: %v", err)
	}
	if ok, err := s.DeleteByID(ctx, "not-a-uuid"); ok || err != nil {
		t.Fatalf("delete = %v, %v", ok, err)
	}
}
