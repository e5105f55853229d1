package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shopsaathi/saathi/internal/config"
	"github.com/shopsaathi/saathi/internal/ingest"
	"github.com/shopsaathi/saathi/internal/insight"
	"github.com/shopsaathi/saathi/internal/insight/openai"
	"github.com/shopsaathi/saathi/internal/kpi"
	"github.com/shopsaathi/saathi/internal/report"
	"github.com/shopsaathi/saathi/internal/sample"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "saathi",
		Short:         "Retail analytics toolkit: CSV in, KPIs and PDF report out",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newReportCmd(), newSampleCmd())

	return root
}

type reportCmd struct {
	file  string
	out   string
	langs string
	topN  int
}

func newReportCmd() *cobra.Command {
	rc := &reportCmd{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the full pipeline on a CSV file and write a PDF report",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.file, "file", "", "Path to the transactions CSV")
	cmd.Flags().StringVar(&rc.out, "out", "report.pdf", "Output PDF path")
	cmd.Flags().StringVar(&rc.langs, "langs", "en,hi", "Comma-separated insight languages")
	cmd.Flags().IntVar(&rc.topN, "top", kpi.DefaultTopN, "Number of top products to rank")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (rc *reportCmd) run(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	f, err := os.Open(rc.file)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	schema := ingest.DefaultSchema()
	schema.DefaultUnitPrice = cfg.Ingest.DefaultUnitPrice

	res, err := schema.ParseCSV(f)
	if err != nil {
		return err
	}

	summary := kpi.Aggregate(res.Transactions, rc.topN)

	var client insight.Client
	if cfg.AI.APIKey != "" {
		client = openai.New(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
	}

	insights := insight.NewService(client, cfg.AI.Timeout)

	results, err := insights.Request(cmd.Context(), summary, parseLanguages(rc.langs))
	if err != nil {
		return err
	}

	pdf, err := report.NewService().Render(summary, results)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if err := os.WriteFile(rc.out, pdf, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rows: %d (skipped %d)\n", len(res.Transactions), res.Skipped)
	fmt.Fprintf(out, "Total revenue: %s  AOV: %s\n", kpi.Money(summary.TotalRevenue), kpi.Money(summary.AverageOrderValue))
	fmt.Fprintf(out, "Report written to %s\n", rc.out)

	return nil
}

type sampleCmd struct {
	scenario string
	out      string
}

func newSampleCmd() *cobra.Command {
	sc := &sampleCmd{}
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a bundled sample dataset as CSV",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.scenario, "scenario", string(sample.ScenarioNormalWeek),
		fmt.Sprintf("One of: %v", sample.Scenarios()))
	cmd.Flags().StringVar(&sc.out, "out", "sample.csv", "Output CSV path")

	return cmd
}

func (sc *sampleCmd) run(cmd *cobra.Command, _ []string) error {
	txs, err := sample.Generate(sample.Scenario(sc.scenario), time.Now().UTC())
	if err != nil {
		return err
	}

	f, err := os.Create(sc.out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"date", "product", "quantity", "unit_price"}); err != nil {
		return err
	}

	for _, tx := range txs {
		record := []string{
			tx.Date.Format(time.DateOnly),
			tx.Product,
			strconv.FormatInt(tx.Quantity, 10),
			kpi.Money(tx.UnitPrice),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d transactions to %s\n", len(txs), sc.out)

	return nil
}

func parseLanguages(raw string) []insight.Language {
	var langs []insight.Language

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			langs = append(langs, insight.Language(part))
		}
	}

	return langs
}
