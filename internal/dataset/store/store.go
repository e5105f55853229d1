package store

import (
	"context"
	"sync"

	"github.com/shopsaathi/saathi/internal/dataset"
)

// Memory keeps the single session dataset in process memory. The mutex
// guards against concurrent HTTP requests; there is no cross-session state.
type Memory struct {
	mu      sync.RWMutex
	current *dataset.Dataset
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Replace(_ context.Context, ds *dataset.Dataset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = ds

	return nil
}

func (m *Memory) Current(_ context.Context) (*dataset.Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, dataset.ErrNoDataset
	}

	return m.current, nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil

	return nil
}
