package insight

import (
	"fmt"

	"github.com/shopsaathi/saathi/internal/kpi"
)

// fallback builds the deterministic local substitute for a model reply.
// For identical summaries the output is byte-identical. The Hindi copy is
// written independently, not translated mechanically from the English one.
func fallback(s kpi.Summary, lang Language) Result {
	if lang == LanguageHindi {
		return fallbackHindi(s)
	}

	return fallbackEnglish(s)
}

func fallbackEnglish(s kpi.Summary) Result {
	if s.TransactionCount == 0 {
		return Result{
			Language: LanguageEnglish,
			Summary:  "No transactions were recorded this period, so there are no sales trends to report yet.",
			Recommendations: []string{
				"Load a CSV export or enter a few sales to get your first analysis.",
				"Log every sale, even small ones; trends only appear with consistent data.",
				"Try one of the bundled sample datasets to see what a full report looks like.",
			},
			Provenance: ProvenanceFallback,
		}
	}

	top := s.TopProducts[0]

	return Result{
		Language: LanguageEnglish,
		Summary: fmt.Sprintf(
			"Revenue this period was %s across %d transactions, with an average order value of %s. "+
				"%s led sales with %s in revenue.",
			kpi.Money(s.TotalRevenue), s.TransactionCount, kpi.Money(s.AverageOrderValue),
			top.Product, kpi.Money(top.Revenue)),
		Recommendations: []string{
			fmt.Sprintf("Keep %s well stocked and visible; it is carrying the period.", top.Product),
			"Bundle slower movers with the top seller to lift average order value.",
			"Check the daily revenue chart for peak days and plan stock and staffing around them.",
		},
		Provenance: ProvenanceFallback,
	}
}

func fallbackHindi(s kpi.Summary) Result {
	if s.TransactionCount == 0 {
		return Result{
			Language: LanguageHindi,
			Summary:  "इस अवधि में कोई लेनदेन दर्ज नहीं हुआ, इसलिए अभी बिक्री का कोई रुझान उपलब्ध नहीं है।",
			Recommendations: []string{
				"पहली रिपोर्ट के लिए CSV फ़ाइल अपलोड करें या कुछ बिक्री दर्ज करें।",
				"हर बिक्री दर्ज करें, छोटी भी; नियमित डेटा से ही रुझान दिखते हैं।",
				"पूरी रिपोर्ट देखने के लिए सैंपल डेटासेट आज़माएँ।",
			},
			Provenance: ProvenanceFallback,
		}
	}

	top := s.TopProducts[0]

	return Result{
		Language: LanguageHindi,
		Summary: fmt.Sprintf(
			"इस अवधि में कुल बिक्री %s रही, %d लेनदेन के साथ, और औसत ऑर्डर मूल्य %s रहा। "+
				"सबसे अधिक बिक्री %s की रही, जिससे %s की आय हुई।",
			kpi.Money(s.TotalRevenue), s.TransactionCount, kpi.Money(s.AverageOrderValue),
			top.Product, kpi.Money(top.Revenue)),
		Recommendations: []string{
			fmt.Sprintf("%s का स्टॉक बनाए रखें और उसे दुकान में आगे रखें।", top.Product),
			"धीमी बिक्री वाले सामान को टॉप सेलर के साथ बंडल करके औसत ऑर्डर मूल्य बढ़ाएँ।",
			"दैनिक बिक्री के चरम दिनों को देखकर स्टॉक और स्टाफ की योजना बनाएँ।",
		},
		Provenance: ProvenanceFallback,
	}
}
