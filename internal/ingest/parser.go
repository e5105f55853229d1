package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/shopsaathi/saathi/internal/encoding"
	"github.com/shopsaathi/saathi/internal/transaction"
)

// Result is the outcome of normalizing one raw table. Partial success is
// the norm for messy retail exports: malformed rows are dropped and counted
// rather than failing the whole ingest.
type Result struct {
	Transactions   []transaction.Transaction
	Skipped        int  // rows dropped for malformed values
	PriceEstimated bool // no unit_price column; default applied to every row
}

// ParseCSV reads a CSV with a header row and produces a normalized Result.
// The input is decoded to UTF-8 first; the header is resolved via the alias
// table. A missing required column is a *SchemaError.
func (s Schema) ParseCSV(r io.Reader) (*Result, error) {
	utf8r, err := enc.DecodeUTF8(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv: header row required")
	}

	cols, err := s.MatchHeader(rows[0])
	if err != nil {
		return nil, err
	}

	return s.parseRows(cols, rows[1:]), nil
}

// parseRows applies the row-level policy: rows with an unparseable date,
// empty product, or non-numeric/negative quantity or price are skipped and
// tallied. Original file order is preserved and nothing is deduplicated.
func (s Schema) parseRows(cols map[Field]int, rows [][]string) *Result {
	priceIdx, hasPrice := cols[FieldUnitPrice]
	res := &Result{PriceEstimated: !hasPrice}

	for _, row := range rows {
		if isBlank(row) {
			continue
		}

		date, ok := parseDate(cell(row, cols[FieldDate]))
		if !ok {
			res.Skipped++
			continue
		}

		product := cell(row, cols[FieldProduct])
		if product == "" {
			res.Skipped++
			continue
		}

		qty, err := strconv.ParseInt(cell(row, cols[FieldQuantity]), 10, 64)
		if err != nil || qty < 0 {
			res.Skipped++
			continue
		}

		price := s.DefaultUnitPrice

		if hasPrice {
			price, err = parsePriceCents(cell(row, priceIdx))
			if err != nil || price < 0 {
				res.Skipped++
				continue
			}
		}

		res.Transactions = append(res.Transactions, transaction.Transaction{
			Date:      date,
			Product:   product,
			Quantity:  qty,
			UnitPrice: price,
		})
	}

	return res
}

// dateLayouts are tried in order; the first parse wins. Covers ISO dates,
// the slash variants spreadsheets emit, and full timestamps.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return transaction.Day(t), true
		}
	}

	return time.Time{}, false
}

// parsePriceCents converts a decimal price string to cents.
func parsePriceCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// cell safely gets a trimmed cell value from a row.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
