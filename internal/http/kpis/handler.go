package kpis

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopsaathi/saathi/internal/dataset"
)

type Handler struct {
	datasets *dataset.Service
}

func NewHandler(datasets *dataset.Service) *Handler {
	return &Handler{datasets: datasets}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.datasets.Summary(r.Context())
	if err != nil {
		if errors.Is(err, dataset.ErrNoDataset) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
