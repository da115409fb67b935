package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr         string
	Store            string
	DatabaseURL      string
	CORSAllowOrigins []string
	StaticDir        string

	PDFSummaryStyle string
	PDFIncludeTax   bool
	PDFIncludeLogo  bool
	PDFLogoPath     string
	CGSTRate        float64
	SGSTRate        float64
}

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// MustLoad reads the process environment, after loading .env when one is
// present in the working directory.
func MustLoad() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env: %v", err)
	}

	cfg := Config{
		HTTPAddr:         httpAddr(),
		Store:            env("STORE", StorePostgres),
		CORSAllowOrigins: list(env("CORS_ALLOW_ORIGINS", "https://furnisure-frontend.vercel.app")),
		StaticDir:        env("STATIC_DIR", "public"),
		PDFSummaryStyle:  env("PDF_SUMMARY_STYLE", "bordered-table"),
		PDFIncludeTax:    envBool("PDF_INCLUDE_TAX", false),
		PDFIncludeLogo:   envBool("PDF_INCLUDE_LOGO", true),
		PDFLogoPath:      env("PDF_LOGO_PATH", "public/logo.png"),
		CGSTRate:         envFloat("CGST_RATE", 0),
		SGSTRate:         envFloat("SGST_RATE", 0),
	}
	switch cfg.Store {
	case StorePostgres:
		cfg.DatabaseURL = mustEnv("DATABASE_URL")
	case StoreMemory:
	default:
		log.Fatalf("unknown STORE %q", cfg.Store)
	}
	return cfg
}

func httpAddr() string {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		return v
	}
	return ":" + env("PORT", "10000")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("env %s: %v", k, err)
	}
	return b
}

func envFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("env %s: %v", k, err)
	}
	return f
}

func list(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
