package quotation

import "context"

// Store persists quotations. Insert and UpdateByID assign CreatedAt and
// UpdatedAt; Insert also assigns ID when it is empty.
type Store interface {
	Insert(ctx context.Context, q Quotation) (Quotation, error)
	FindByID(ctx context.Context, id string) (Quotation, error)
	// FindAll returns every quotation, newest CreatedAt first.
	FindAll(ctx context.Context) ([]Quotation, error)
	// FindMostRecent returns nil without error on an empty store.
	FindMostRecent(ctx context.Context) (*Quotation, error)
	// UpdateByID overwrites client fields, items and financials. Number,
	// date and CreatedAt are kept.
	UpdateByID(ctx context.Context, id string, q Quotation) (Quotation, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
