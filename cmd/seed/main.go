// Command seed replaces all quotations with the Q-1001 sample.
package main

import (
	"context"
	"log"
	"time"

	"furnisure/backend/internal/app/config"
	"furnisure/backend/internal/domain/quotation"
	"furnisure/backend/internal/infra/db/postgres"
)

func main() {
	cfg := config.MustLoad()
	if cfg.Store != config.StorePostgres {
		log.Fatalf("seed: STORE=%s, nothing to seed", cfg.Store)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("db: %v", err)
	}
	store := postgres.NewQuotationStore(db)
	if err := store.DeleteAll(ctx); err != nil {
		log.Fatalf("seed: clear: %v", err)
	}

	q, err := store.Insert(ctx, sample())
	if err != nil {
		log.Fatalf("seed: insert: %v", err)
	}
	log.Printf("seeded %s id=%s", q.QuotationNo, q.ID)
}

func sample() quotation.Quotation {
	in := quotation.Input{
		ClientName:    "Mr. Hardik",
		ClientAddress: "Vadodara",
		ClientContact: "8460656416",
		Items: []quotation.Item{
			{Description: "Storage Puffy 2 nos x 5500", Amount: 54400},
			{Description: "Transportation", Amount: 10000},
			{Description: "Sofa 17 rft", Amount: 11000},
			{Description: "Center table With Drawer", Amount: 800},
		},
		Discount: 16200,
		Advance:  30000,
	}
	q := quotation.Quotation{
		QuotationNo: "Q-1001",
		Date:        time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
	}
	in.Apply(&q, quotation.ComputeFinancials(in.Items, in.Discount, in.Advance, quotation.TaxRates{}))
	return q
}
