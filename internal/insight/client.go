package insight

import "context"

// Reply is the structured response expected from the text-generation API:
// a short narrative summary plus 3-5 ranked recommendations.
type Reply struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

//go:generate mockgen -source=client.go -destination=client_mock.go -package=insight
type Client interface {
	GenerateInsights(ctx context.Context, prompt string, lang Language) (*Reply, error)
}
