package insight

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopsaathi/saathi/internal/dataset"
	"github.com/shopsaathi/saathi/internal/insight"
)

type Handler struct {
	datasets *dataset.Service
	insights *insight.Service
}

func NewHandler(datasets *dataset.Service, insights *insight.Service) *Handler {
	return &Handler{datasets: datasets, insights: insights}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.generate)
}

type generateRequest struct {
	Languages []insight.Language `json:"languages"`
}

type generateResponse struct {
	Insights []insight.Result `json:"insights"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Languages) == 0 {
		req.Languages = []insight.Language{insight.LanguageEnglish, insight.LanguageHindi}
	}

	summary, err := h.datasets.Summary(r.Context())
	if err != nil {
		if errors.Is(err, dataset.ErrNoDataset) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	results, err := h.insights.Request(r.Context(), summary, req.Languages)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(generateResponse{Insights: results}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
