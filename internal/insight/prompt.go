package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopsaathi/saathi/internal/kpi"
)

// maxPromptDays caps how much of the daily series goes into the prompt.
const maxPromptDays = 31

// BuildPrompt renders the instruction sent to the model for one language.
// Only aggregates go into the prompt, never raw rows, so prompt size is
// bounded by the top-N setting rather than dataset size.
func BuildPrompt(s kpi.Summary, lang Language) string {
	var sb strings.Builder

	fmt.Fprintf(&sb,
		"You are an expert retail analyst reviewing a small shop's sales. "+
			"Write in %s. Return strict JSON with keys \"summary\" (a short paragraph) "+
			"and \"recommendations\" (3 to 5 concise strings, most important first). "+
			"Be concrete and actionable; an upbeat but professional tone.\n\n",
		languageName(lang))

	fmt.Fprintf(&sb, "Total revenue: %s\n", kpi.Money(s.TotalRevenue))
	fmt.Fprintf(&sb, "Transactions: %d\n", s.TransactionCount)
	fmt.Fprintf(&sb, "Average order value: %s\n", kpi.Money(s.AverageOrderValue))

	if len(s.TopProducts) > 0 {
		sb.WriteString("Top products by revenue:\n")

		for i, p := range s.TopProducts {
			fmt.Fprintf(&sb, "%d. %s: %s (%d units)\n", i+1, p.Product, kpi.Money(p.Revenue), p.Quantity)
		}
	}

	if len(s.DailyRevenue) > 0 {
		// Keep the prompt bounded even for long date ranges.
		series := s.DailyRevenue
		if len(series) > maxPromptDays {
			series = series[len(series)-maxPromptDays:]
		}

		sb.WriteString("Daily revenue (most recent):\n")

		for _, d := range series {
			fmt.Fprintf(&sb, "%s: %s\n", d.Date.Format(time.DateOnly), kpi.Money(d.Revenue))
		}
	}

	return sb.String()
}

func languageName(lang Language) string {
	switch lang {
	case LanguageHindi:
		return "Hindi"
	default:
		return "English"
	}
}
