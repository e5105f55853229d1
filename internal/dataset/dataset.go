package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopsaathi/saathi/internal/transaction"
)

// Source identifies how the current dataset was loaded.
type Source string

const (
	SourceUpload Source = "upload"
	SourceManual Source = "manual"
	SourceSample Source = "sample"
)

// Dataset is the transaction set for one analysis session. Each ingest
// action replaces the previous dataset wholesale; nothing persists across
// process restarts.
type Dataset struct {
	ID             uuid.UUID
	Source         Source
	Transactions   []transaction.Transaction
	Skipped        int
	PriceEstimated bool
	LoadedAt       time.Time
}
