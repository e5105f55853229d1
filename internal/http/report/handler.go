package report

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shopsaathi/saathi/internal/dataset"
	"github.com/shopsaathi/saathi/internal/insight"
	"github.com/shopsaathi/saathi/internal/report"
)

type Handler struct {
	datasets *dataset.Service
	insights *insight.Service
	reports  *report.Service
}

func NewHandler(datasets *dataset.Service, insights *insight.Service, reports *report.Service) *Handler {
	return &Handler{datasets: datasets, insights: insights, reports: reports}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	langs := parseLanguages(r.URL.Query().Get("langs"))

	summary, err := h.datasets.Summary(r.Context())
	if err != nil {
		if errors.Is(err, dataset.ErrNoDataset) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	results, err := h.insights.Request(r.Context(), summary, langs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf, err := h.reports.Render(summary, results)
	if err != nil {
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"report_%s.pdf\"", time.Now().UTC().Format("20060102")))

	if _, err := w.Write(pdf); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}

// parseLanguages reads a comma-separated langs query parameter,
// defaulting to both supported languages.
func parseLanguages(raw string) []insight.Language {
	if raw == "" {
		return []insight.Language{insight.LanguageEnglish, insight.LanguageHindi}
	}

	var langs []insight.Language

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			langs = append(langs, insight.Language(part))
		}
	}

	return langs
}
