package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"furnisure/backend/internal/domain/quotation"
	"furnisure/backend/internal/domain/quotation/pdf"
)

type Handlers struct {
	Quotations *quotation.Service
	PDF        pdf.Generator
}

func New(svc *quotation.Service, gen pdf.Generator) *Handlers {
	return &Handlers{Quotations: svc, PDF: gen}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
