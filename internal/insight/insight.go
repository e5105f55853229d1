package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopsaathi/saathi/internal/kpi"
)

// Language tags one insight generation. Each language is requested as an
// independent generation, never as a translation of another.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// Provenance records whether an insight came from the external model or
// from local fallback templates, so callers can label it.
type Provenance string

const (
	ProvenanceGenerated Provenance = "generated"
	ProvenanceFallback  Provenance = "fallback"
)

// Result is the narrative insight for one language.
type Result struct {
	Language        Language   `json:"language"`
	Summary         string     `json:"summary"`
	Recommendations []string   `json:"recommendations"`
	Provenance      Provenance `json:"provenance"`
}

// maxRecommendations bounds the ranked list kept from a model reply.
const maxRecommendations = 5

// Service turns KPI summaries into narrative insights. External failures
// of any kind are recovered into deterministic fallback text; they are
// never surfaced to the caller as errors.
type Service struct {
	client  Client // nil means the session runs in permanent fallback mode
	timeout time.Duration
}

func NewService(client Client, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Service{client: client, timeout: timeout}
}

// Request produces one Result per requested language. The only returned
// error is an unsupported language, which indicates a caller bug rather
// than a runtime condition.
func (s *Service) Request(ctx context.Context, summary kpi.Summary, langs []Language) ([]Result, error) {
	if len(langs) == 0 {
		return nil, fmt.Errorf("no languages requested")
	}

	for _, lang := range langs {
		if lang != LanguageEnglish && lang != LanguageHindi {
			return nil, fmt.Errorf("unsupported language %q", lang)
		}
	}

	results := make([]Result, 0, len(langs))
	for _, lang := range langs {
		results = append(results, s.generate(ctx, summary, lang))
	}

	return results, nil
}

func (s *Service) generate(ctx context.Context, summary kpi.Summary, lang Language) Result {
	if s.client == nil {
		return fallback(summary, lang)
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.client.GenerateInsights(cctx, BuildPrompt(summary, lang), lang)
	if err != nil {
		slog.Warn("insight generation failed, using fallback", "language", lang, "error", err)
		return fallback(summary, lang)
	}

	if !usableReply(reply) {
		slog.Warn("insight reply missing expected structure, using fallback", "language", lang)
		return fallback(summary, lang)
	}

	recs := reply.Recommendations
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	return Result{
		Language:        lang,
		Summary:         strings.TrimSpace(reply.Summary),
		Recommendations: recs,
		Provenance:      ProvenanceGenerated,
	}
}

// usableReply checks the minimum structure expected from the model:
// a summary and at least one ranked recommendation.
func usableReply(r *Reply) bool {
	return r != nil && strings.TrimSpace(r.Summary) != "" && len(r.Recommendations) > 0
}
