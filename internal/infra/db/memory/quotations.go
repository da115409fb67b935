// Package memory is an in-process quotation store for tests and local runs
// without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"furnisure/backend/internal/domain/quotation"
)

type QuotationStore struct {
	mu   sync.RWMutex
	rows map[string]quotation.Quotation
	now  func() time.Time
}

func NewQuotationStore() *QuotationStore {
	return &QuotationStore{
		rows: make(map[string]quotation.Quotation),
		now:  time.Now,
	}
}

// WithClock replaces the timestamp source, for tests that need a stable
// creation order.
func (s *QuotationStore) WithClock(now func() time.Time) *QuotationStore {
	s.now = now
	return s
}

func (s *QuotationStore) Insert(_ context.Context, q quotation.Quotation) (quotation.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.QuotationNo == q.QuotationNo {
			return quotation.Quotation{}, quotation.ErrDuplicateKey
		}
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if _, ok := s.rows[q.ID]; ok {
		return quotation.Quotation{}, quotation.ErrDuplicateKey
	}
	now := s.now()
	if q.Date.IsZero() {
		q.Date = now
	}
	q.CreatedAt = now
	q.UpdatedAt = now
	s.rows[q.ID] = clone(q)
	return clone(q), nil
}

func (s *QuotationStore) FindByID(_ context.Context, id string) (quotation.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.rows[id]
	if !ok {
		return quotation.Quotation{}, quotation.ErrNotFound
	}
	return clone(q), nil
}

func (s *QuotationStore) FindAll(_ context.Context) ([]quotation.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]quotation.Quotation, 0, len(s.rows))
	for _, q := range s.rows {
		out = append(out, clone(q))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return quotation.CompareNumbers(out[i].QuotationNo, out[j].QuotationNo) > 0
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *QuotationStore) FindMostRecent(ctx context.Context) (*quotation.Quotation, error) {
	all, err := s.FindAll(ctx)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return &all[0], nil
}

func (s *QuotationStore) UpdateByID(_ context.Context, id string, q quotation.Quotation) (quotation.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.rows[id]
	if !ok {
		return quotation.Quotation{}, quotation.ErrNotFound
	}
	cur.ClientName = q.ClientName
	cur.ClientAddress = q.ClientAddress
	cur.ClientContact = q.ClientContact
	cur.Items = q.Items
	cur.Subtotal = q.Subtotal
	cur.Discount = q.Discount
	cur.NetAmount = q.NetAmount
	cur.CGST = q.CGST
	cur.SGST = q.SGST
	cur.GrandTotal = q.GrandTotal
	cur.Advance = q.Advance
	cur.RemainingAmount = q.RemainingAmount
	cur.UpdatedAt = s.now()
	s.rows[id] = clone(cur)
	return clone(cur), nil
}

func (s *QuotationStore) DeleteByID(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

func clone(q quotation.Quotation) quotation.Quotation {
	q.Items = append([]quotation.Item(nil), q.Items...)
	return q
}
