package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"furnisure/backend/internal/domain/quotation"
)

const maxBodyBytes = 1 << 20

func decodeInput(w http.ResponseWriter, r *http.Request) (quotation.Input, bool) {
	var in quotation.Input
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return in, false
	}
	return in, true
}

// CreateQuotation renders the quotation under its allocated number, stores
// it and answers with the PDF. Nothing is stored when rendering fails.
func (h *Handlers) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	q, pdfBytes, err := h.Quotations.CreateRendered(r.Context(), in, h.PDF.Generate)
	if err != nil {
		switch {
		case errors.Is(err, quotation.ErrValidation):
			writeError(w, http.StatusBadRequest, "Missing fields")
		case errors.Is(err, quotation.ErrRender):
			log.Printf("quotation: create: %v", err)
			writeError(w, http.StatusInternalServerError, "PDF generation failed")
		default:
			log.Printf("quotation: create: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to create quotation")
		}
		return
	}
	log.Printf("quotation: created %s id=%s", q.QuotationNo, q.ID)

	sendPDF(w, q.QuotationNo, pdfBytes, http.StatusCreated)
}

// QuotationPDF renders an already stored quotation again.
func (h *Handlers) QuotationPDF(w http.ResponseWriter, r *http.Request) {
	q, err := h.Quotations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.lookupFailed(w, "fetch", err)
		return
	}
	h.writePDF(w, q, http.StatusOK)
}

func (h *Handlers) GetQuotation(w http.ResponseWriter, r *http.Request) {
	q, err := h.Quotations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.lookupFailed(w, "fetch", err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	q, err := h.Quotations.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		if errors.Is(err, quotation.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Missing fields")
			return
		}
		h.lookupFailed(w, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	if err := h.Quotations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.lookupFailed(w, "delete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) ListQuotations(w http.ResponseWriter, r *http.Request) {
	list, err := h.Quotations.List(r.Context())
	if err != nil {
		log.Printf("quotation: list: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) lookupFailed(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, quotation.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	log.Printf("quotation: %s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "Failed to "+op)
}

func (h *Handlers) writePDF(w http.ResponseWriter, q quotation.Quotation, status int) {
	pdfBytes, err := h.PDF.Generate(q)
	if err != nil {
		log.Printf("quotation: render %s: %v", q.QuotationNo, err)
		writeError(w, http.StatusInternalServerError, "PDF generation failed")
		return
	}
	sendPDF(w, q.QuotationNo, pdfBytes, status)
}

func sendPDF(w http.ResponseWriter, quotationNo string, pdfBytes []byte, status int) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, quotationNo))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.WriteHeader(status)
	w.Write(pdfBytes)
}
