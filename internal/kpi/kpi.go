package kpi

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopsaathi/saathi/internal/transaction"
)

// DefaultTopN is the top-products cutoff used when no override is configured.
const DefaultTopN = 5

// ProductRevenue is one entry of the top-products ranking.
type ProductRevenue struct {
	Product  string `json:"product"`
	Revenue  int64  `json:"revenue"`
	Quantity int64  `json:"quantity"`
}

// DayRevenue is one point of the daily revenue series.
type DayRevenue struct {
	Date    time.Time `json:"date"`
	Revenue int64     `json:"revenue"`
}

// Summary is the read-only KPI snapshot derived from one transaction set.
// Monetary values are cents. It is recomputed in full whenever the set
// changes, never incrementally updated.
type Summary struct {
	TotalRevenue      int64            `json:"total_revenue"`
	TransactionCount  int              `json:"transaction_count"`
	AverageOrderValue int64            `json:"average_order_value"`
	TopProducts       []ProductRevenue `json:"top_products"`
	DailyRevenue      []DayRevenue     `json:"daily_revenue"`
}

// Aggregate computes the Summary for a transaction set. It is a pure
// function: deterministic for a given input and free of side effects.
// An empty set yields an all-zero Summary, not an error.
func Aggregate(txs []transaction.Transaction, topN int) Summary {
	if topN <= 0 {
		topN = DefaultTopN
	}

	s := Summary{
		TransactionCount: len(txs),
		TopProducts:      []ProductRevenue{},
		DailyRevenue:     []DayRevenue{},
	}

	byProduct := make(map[string]*ProductRevenue)
	byDay := make(map[time.Time]int64)

	for _, tx := range txs {
		rev := tx.Revenue()
		s.TotalRevenue += rev

		p, ok := byProduct[tx.Product]
		if !ok {
			p = &ProductRevenue{Product: tx.Product}
			byProduct[tx.Product] = p
		}

		p.Revenue += rev
		p.Quantity += tx.Quantity

		byDay[transaction.Day(tx.Date)] += rev
	}

	if s.TransactionCount > 0 {
		s.AverageOrderValue = decimal.NewFromInt(s.TotalRevenue).
			DivRound(decimal.NewFromInt(int64(s.TransactionCount)), 0).
			IntPart()
	}

	for _, p := range byProduct {
		s.TopProducts = append(s.TopProducts, *p)
	}

	// Revenue descending, product name ascending on ties, for determinism.
	sort.Slice(s.TopProducts, func(i, j int) bool {
		a, b := s.TopProducts[i], s.TopProducts[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}

		return a.Product < b.Product
	})

	if len(s.TopProducts) > topN {
		s.TopProducts = s.TopProducts[:topN]
	}

	for day, rev := range byDay {
		s.DailyRevenue = append(s.DailyRevenue, DayRevenue{Date: day, Revenue: rev})
	}

	// Sparse chronological series; days without sales are not synthesized.
	sort.Slice(s.DailyRevenue, func(i, j int) bool {
		return s.DailyRevenue[i].Date.Before(s.DailyRevenue[j].Date)
	})

	return s
}

// Money formats cents as a plain decimal string, e.g. 123456 -> "1234.56".
func Money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
