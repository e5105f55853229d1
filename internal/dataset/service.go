package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopsaathi/saathi/internal/ingest"
	"github.com/shopsaathi/saathi/internal/kpi"
)

// ErrNoDataset is returned when no data has been loaded this session.
var ErrNoDataset = errors.New("no dataset loaded")

// Repository holds the session's current dataset.
type Repository interface {
	Replace(ctx context.Context, ds *Dataset) error
	Current(ctx context.Context) (*Dataset, error)
	Clear(ctx context.Context) error
}

// Service manages the session transaction set and derives KPI summaries
// from it.
type Service struct {
	repo Repository
	topN int
}

func NewService(repo Repository, topN int) *Service {
	if topN <= 0 {
		topN = kpi.DefaultTopN
	}

	return &Service{repo: repo, topN: topN}
}

// Load stores a freshly normalized result as the session dataset,
// replacing any prior one.
func (s *Service) Load(ctx context.Context, source Source, res *ingest.Result) (*Dataset, error) {
	ds := &Dataset{
		ID:             uuid.New(),
		Source:         source,
		Transactions:   res.Transactions,
		Skipped:        res.Skipped,
		PriceEstimated: res.PriceEstimated,
		LoadedAt:       time.Now().UTC(),
	}

	if err := s.repo.Replace(ctx, ds); err != nil {
		return nil, fmt.Errorf("replace dataset: %w", err)
	}

	return ds, nil
}

// Current returns the session dataset, or ErrNoDataset.
func (s *Service) Current(ctx context.Context) (*Dataset, error) {
	return s.repo.Current(ctx)
}

// Clear drops the session dataset.
func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// Summary recomputes the KPI snapshot for the current dataset in full.
func (s *Service) Summary(ctx context.Context) (kpi.Summary, error) {
	ds, err := s.repo.Current(ctx)
	if err != nil {
		return kpi.Summary{}, err
	}

	return kpi.Aggregate(ds.Transactions, s.topN), nil
}
