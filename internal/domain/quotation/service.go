package quotation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

const defaultAllocAttempts = 5

type Service struct {
	store    Store
	rates    TaxRates
	attempts int
	now      func() time.Time
}

type Option func(*Service)

func WithTaxRates(r TaxRates) Option { return func(s *Service) { s.rates = r } }

// WithAllocAttempts bounds how often Create re-allocates a number after a
// duplicate key on insert.
func WithAllocAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.attempts = n
		}
	}
}

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, attempts: defaultAllocAttempts, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) TaxRates() TaxRates { return s.rates }

// RenderFunc turns a quotation that is about to be stored into its document.
type RenderFunc func(q Quotation) ([]byte, error)

// Create validates the input, computes the financials and persists the
// quotation under the next free number. A duplicate number on insert means
// another request took it first; the number is re-allocated and the insert
// retried.
func (s *Service) Create(ctx context.Context, in Input) (Quotation, error) {
	q, _, err := s.CreateRendered(ctx, in, nil)
	return q, err
}

// CreateRendered is Create with the document rendered for the allocated
// number before the insert. A render failure returns an error wrapping
// ErrRender and nothing is stored.
func (s *Service) CreateRendered(ctx context.Context, in Input, render RenderFunc) (Quotation, []byte, error) {
	if err := Validate(in); err != nil {
		return Quotation{}, nil, err
	}

	var q Quotation
	in.Apply(&q, ComputeFinancials(in.Items, in.Discount, in.Advance, s.rates))
	q.Date = s.now()

	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		latest, err := s.latestNumbered(ctx)
		if err != nil {
			return Quotation{}, nil, fmt.Errorf("find most recent: %w", err)
		}
		q.QuotationNo = NextQuotationNumber(latest)

		var doc []byte
		if render != nil {
			if doc, err = render(q); err != nil {
				return Quotation{}, nil, fmt.Errorf("%w: %s: %v", ErrRender, q.QuotationNo, err)
			}
		}

		created, err := s.store.Insert(ctx, q)
		if err == nil {
			return created, doc, nil
		}
		if !errors.Is(err, ErrDuplicateKey) {
			return Quotation{}, nil, fmt.Errorf("insert %s: %w", q.QuotationNo, err)
		}
		log.Printf("quotation: number %s taken, retrying (%d/%d)", q.QuotationNo, attempt, s.attempts)
		lastErr = err
	}
	return Quotation{}, nil, fmt.Errorf("allocate quotation number: %w", lastErr)
}

// latestNumbered returns the most recent quotation, or the highest numbered
// one when the most recent carries no numeric suffix.
func (s *Service) latestNumbered(ctx context.Context) (*Quotation, error) {
	latest, err := s.store.FindMostRecent(ctx)
	if err != nil || latest == nil {
		return latest, err
	}
	if _, ok := parseNumber(latest.QuotationNo); ok {
		return latest, nil
	}

	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var best *Quotation
	var bestN int64
	for i := range all {
		n, ok := parseNumber(all[i].QuotationNo)
		if ok && (best == nil || n > bestN) {
			best, bestN = &all[i], n
		}
	}
	return best, nil
}

func (s *Service) Get(ctx context.Context, id string) (Quotation, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(all))
	for _, q := range all {
		out = append(out, q.Summary())
	}
	return out, nil
}

// Update replaces the client fields and items of an existing quotation and
// recomputes its financials. Number and date are kept.
func (s *Service) Update(ctx context.Context, id string, in Input) (Quotation, error) {
	if err := Validate(in); err != nil {
		return Quotation{}, err
	}
	var q Quotation
	in.Apply(&q, ComputeFinancials(in.Items, in.Discount, in.Advance, s.rates))
	return s.store.UpdateByID(ctx, id, q)
}

// Delete returns ErrNotFound when nothing was removed.
func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
