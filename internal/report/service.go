package report

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/shopsaathi/saathi/internal/chart"
	"github.com/shopsaathi/saathi/internal/insight"
	"github.com/shopsaathi/saathi/internal/kpi"
)

const pageMargin = 18

// Service renders the downloadable PDF report.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Render assembles the report in a fixed order: title, KPI block, top-products
// chart, daily-revenue chart, then one insight block per language. A chart
// that fails to render (e.g. no data points) is skipped; the rest of the
// document still ships. Rendering never depends on insight provenance.
func (s *Service) Render(summary kpi.Summary, insights []insight.Result) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle("Retail Performance Report", true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Retail Performance Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, "Generated "+time.Now().UTC().Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	s.writeKPIBlock(pdf, summary)

	if png, err := chart.TopProductsBar(summary.TopProducts); err != nil {
		slog.Warn("skipping chart section", "chart", "top_products", "error", err)
	} else {
		s.writeChart(pdf, "top_products", png)
	}

	if png, err := chart.DailyRevenueLine(summary.DailyRevenue); err != nil {
		slog.Warn("skipping chart section", "chart", "daily_revenue", "error", err)
	} else {
		s.writeChart(pdf, "daily_revenue", png)
	}

	for _, ins := range insights {
		s.writeInsightBlock(pdf, tr, ins)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *Service) writeKPIBlock(pdf *fpdf.Fpdf, summary kpi.Summary) {
	s.heading(pdf, "Key Performance Indicators")

	rows := [][2]string{
		{"Total Revenue", kpi.Money(summary.TotalRevenue)},
		{"Transactions", fmt.Sprintf("%d", summary.TransactionCount)},
		{"Average Order Value", kpi.Money(summary.AverageOrderValue)},
	}

	if len(summary.TopProducts) > 0 {
		rows = append(rows, [2]string{"Top Product", summary.TopProducts[0].Product})
	}

	pdf.SetFont("Helvetica", "", 10)

	for _, row := range rows {
		pdf.CellFormat(60, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
}

func (s *Service) writeChart(pdf *fpdf.Fpdf, name string, png []byte) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, pageMargin, pdf.GetY(), 160, 0, true, opts, 0, "")
	pdf.Ln(6)
}

func (s *Service) writeInsightBlock(pdf *fpdf.Fpdf, tr func(string) string, ins insight.Result) {
	s.heading(pdf, fmt.Sprintf("Business Insights (%s)", languageTitle(ins.Language)))

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 5, provenanceLabel(ins.Provenance), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(ins.Summary), "", "L", false)
	pdf.Ln(2)

	for i, rec := range ins.Recommendations {
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s", i+1, rec)), "", "L", false)
	}

	pdf.Ln(4)
}

func (s *Service) heading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func languageTitle(lang insight.Language) string {
	switch lang {
	case insight.LanguageHindi:
		return "Hindi"
	default:
		return "English"
	}
}

func provenanceLabel(p insight.Provenance) string {
	if p == insight.ProvenanceGenerated {
		return "AI generated"
	}

	return "Offline summary (generation service unavailable)"
}
