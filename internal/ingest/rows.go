package ingest

import "github.com/shopsaathi/saathi/internal/transaction"

// Row is one manually entered transaction before validation. Date and
// UnitPrice arrive as strings so manual entry shares the exact parsing
// rules of the CSV path.
type Row struct {
	Date      string `json:"date"`
	Product   string `json:"product"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"` // decimal, e.g. "12.50"; empty uses the schema default
}

// FromRows normalizes manually entered rows under the same row-level policy
// as ParseCSV: malformed rows are skipped and counted, never fatal. The
// result is flagged price-estimated when any row relied on the default price.
func (s Schema) FromRows(rows []Row) *Result {
	res := &Result{}

	for _, r := range rows {
		date, ok := parseDate(r.Date)
		if !ok {
			res.Skipped++
			continue
		}

		if r.Product == "" || r.Quantity < 0 {
			res.Skipped++
			continue
		}

		price := s.DefaultUnitPrice

		if r.UnitPrice == "" {
			res.PriceEstimated = true
		} else {
			var err error

			price, err = parsePriceCents(r.UnitPrice)
			if err != nil || price < 0 {
				res.Skipped++
				continue
			}
		}

		res.Transactions = append(res.Transactions, transaction.Transaction{
			Date:      date,
			Product:   r.Product,
			Quantity:  r.Quantity,
			UnitPrice: price,
		})
	}

	return res
}
