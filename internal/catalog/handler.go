package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cat *Catalog
}

func NewHandler(cat *Catalog) *Handler {
	return &Handler{cat: cat}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/api/tokens", h.HandleSearch)
	r.Get("/api/scam-radar", h.HandleScan)
	r.Get("/api/guides", h.HandleGuides)
	r.Get("/api/home", h.HandleHome)
}

func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	results := h.cat.SearchTokens(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	report, err := h.cat.Scan(r.URL.Query().Get("address"))
	if errors.Is(err, ErrEmptyAddress) {
		http.Error(w, "missing address", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) HandleGuides(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"guides":    h.cat.Guides(),
		"quickTips": h.cat.QuickTips(),
	})
}

func (h *Handler) HandleHome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"features": h.cat.Features(),
		"useCases": h.cat.UseCases(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
