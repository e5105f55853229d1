package dataset

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shopsaathi/saathi/internal/dataset"
	"github.com/shopsaathi/saathi/internal/ingest"
	"github.com/shopsaathi/saathi/internal/sample"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	schema   ingest.Schema
	datasets *dataset.Service
}

func NewHandler(schema ingest.Schema, datasets *dataset.Service) *Handler {
	return &Handler{schema: schema, datasets: datasets}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
	r.Post("/manual", h.manual)
	r.Post("/sample", h.loadSample)
	r.Get("/", h.current)
}

type datasetResponse struct {
	ID             uuid.UUID      `json:"id"`
	Source         dataset.Source `json:"source"`
	Rows           int            `json:"rows"`
	SkippedRows    int            `json:"skipped_rows"`
	PriceEstimated bool           `json:"price_estimated"`
	LoadedAt       time.Time      `json:"loaded_at"`
}

type schemaErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := h.schema.ParseCSV(file)
	if err != nil {
		var schemaErr *ingest.SchemaError
		if errors.As(err, &schemaErr) {
			writeJSON(w, http.StatusUnprocessableEntity, schemaErrorResponse{
				Error: schemaErr.Error(),
				Field: string(schemaErr.Field),
			})

			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	h.load(w, r, dataset.SourceUpload, res)
}

type manualRequest struct {
	Rows []ingest.Row `json:"rows"`
}

func (h *Handler) manual(w http.ResponseWriter, r *http.Request) {
	var req manualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Rows) == 0 {
		http.Error(w, "rows field is required", http.StatusBadRequest)
		return
	}

	h.load(w, r, dataset.SourceManual, h.schema.FromRows(req.Rows))
}

type sampleRequest struct {
	Scenario string `json:"scenario"`
}

func (h *Handler) loadSample(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := sample.Generate(sample.Scenario(req.Scenario), time.Now().UTC())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.load(w, r, dataset.SourceSample, &ingest.Result{Transactions: txs})
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasets.Current(r.Context())
	if err != nil {
		if errors.Is(err, dataset.ErrNoDataset) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(ds))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request, source dataset.Source, res *ingest.Result) {
	ds, err := h.datasets.Load(r.Context(), source, res)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(ds))
}

func toResponse(ds *dataset.Dataset) datasetResponse {
	return datasetResponse{
		ID:             ds.ID,
		Source:         ds.Source,
		Rows:           len(ds.Transactions),
		SkippedRows:    ds.Skipped,
		PriceEstimated: ds.PriceEstimated,
		LoadedAt:       ds.LoadedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
