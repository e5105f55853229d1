package insight_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsaathi/saathi/internal/dataset"
	"github.com/shopsaathi/saathi/internal/dataset/store"
	handler "github.com/shopsaathi/saathi/internal/http/insight"
	"github.com/shopsaathi/saathi/internal/ingest"
	"github.com/shopsaathi/saathi/internal/insight"
	"github.com/shopsaathi/saathi/internal/transaction"
)

func fixture(t *testing.T, loaded bool) http.Handler {
	t.Helper()

	datasets := dataset.NewService(store.NewMemory(), 5)

	if loaded {
		_, err := datasets.Load(context.Background(), dataset.SourceManual, &ingest.Result{
			Transactions: []transaction.Transaction{
				{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Product: "Tea", Quantity: 2, UnitPrice: 1000},
			},
		})
		require.NoError(t, err)
	}

	// nil client: permanent fallback mode, no external calls from tests.
	h := handler.NewHandler(datasets, insight.NewService(nil, time.Second))

	r := chi.NewRouter()
	h.Routes(r)

	return r
}

func TestHandler_Generate(t *testing.T) {
	router := fixture(t, true)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"languages":["en","hi"]}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Insights []insight.Result `json:"insights"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	require.Len(t, resp.Insights, 2)
	assert.Equal(t, insight.LanguageEnglish, resp.Insights[0].Language)
	assert.Equal(t, insight.LanguageHindi, resp.Insights[1].Language)

	for _, ins := range resp.Insights {
		assert.Equal(t, insight.ProvenanceFallback, ins.Provenance)
		assert.NotEmpty(t, ins.Summary)
	}
}

func TestHandler_Generate_DefaultsLanguages(t *testing.T) {
	router := fixture(t, true)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Insights []insight.Result `json:"insights"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Insights, 2)
}

func TestHandler_Generate_NoDataset(t *testing.T) {
	router := fixture(t, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Generate_UnsupportedLanguage(t *testing.T) {
	router := fixture(t, true)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"languages":["fr"]}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
