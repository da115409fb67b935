package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"furnisure/backend/internal/app/config"
	apphttp "furnisure/backend/internal/app/http"
	"furnisure/backend/internal/app/http/handlers"
	"furnisure/backend/internal/domain/quotation"
	"furnisure/backend/internal/domain/quotation/pdf"
	pdfgen "furnisure/backend/internal/domain/quotation/pdf/gofpdf"
	"furnisure/backend/internal/infra/db/memory"
	"furnisure/backend/internal/infra/db/postgres"
)

func Run() {
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer closeStore()

	h := handlers.New(NewService(cfg, store), NewGenerator(cfg))
	router := apphttp.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (store=%s)", cfg.HTTPAddr, cfg.Store)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http: %v", err)
		}
	case <-ctx.Done():
		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("http: shutdown: %v", err)
		}
	}
}

// NewService wires the quotation service with the configured tax rates.
func NewService(cfg config.Config, store quotation.Store) *quotation.Service {
	return quotation.NewService(store, quotation.WithTaxRates(taxRates(cfg)))
}

func NewGenerator(cfg config.Config) *pdfgen.Generator {
	opts := pdf.DefaultOptions()
	opts.IncludeTax = cfg.PDFIncludeTax
	opts.IncludeLogo = cfg.PDFIncludeLogo
	opts.LogoPath = cfg.PDFLogoPath
	opts.SummaryStyle = pdf.ParseSummaryStyle(cfg.PDFSummaryStyle)
	opts.TaxRates = taxRates(cfg)
	return pdfgen.New(opts)
}

func taxRates(cfg config.Config) quotation.TaxRates {
	return quotation.TaxRates{CGST: cfg.CGSTRate, SGST: cfg.SGSTRate}
}

func openStore(ctx context.Context, cfg config.Config) (quotation.Store, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Printf("db: using in-memory store, data is lost on restart")
		return memory.NewQuotationStore(), func() {}, nil
	}

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	log.Printf("db: connected")
	return postgres.NewQuotationStore(db), db.Close, nil
}
