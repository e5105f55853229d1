package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/shopsaathi/saathi/internal/config"
	"github.com/shopsaathi/saathi/internal/dataset"
	datasetStore "github.com/shopsaathi/saathi/internal/dataset/store"
	saathiHttp "github.com/shopsaathi/saathi/internal/http"
	datasetHandler "github.com/shopsaathi/saathi/internal/http/dataset"
	insightHandler "github.com/shopsaathi/saathi/internal/http/insight"
	kpisHandler "github.com/shopsaathi/saathi/internal/http/kpis"
	reportHandler "github.com/shopsaathi/saathi/internal/http/report"
	"github.com/shopsaathi/saathi/internal/ingest"
	"github.com/shopsaathi/saathi/internal/insight"
	"github.com/shopsaathi/saathi/internal/insight/openai"
	"github.com/shopsaathi/saathi/internal/report"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var insightClient insight.Client

	if cfg.AI.APIKey != "" {
		insightClient = openai.New(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
	} else {
		slog.Warn("AI_API_KEY not set, insights will use local fallback text")
	}

	schema := ingest.DefaultSchema()
	schema.DefaultUnitPrice = cfg.Ingest.DefaultUnitPrice

	var (
		datasetService = dataset.NewService(datasetStore.NewMemory(), cfg.Analytics.TopProducts)
		insightService = insight.NewService(insightClient, cfg.AI.Timeout)
		reportService  = report.NewService()
	)

	var (
		datasetsH = datasetHandler.NewHandler(schema, datasetService)
		kpisH     = kpisHandler.NewHandler(datasetService)
		insightsH = insightHandler.NewHandler(datasetService, insightService)
		reportH   = reportHandler.NewHandler(datasetService, insightService, reportService)
	)

	router := saathiHttp.New(datasetsH, kpisH, insightsH, reportH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
