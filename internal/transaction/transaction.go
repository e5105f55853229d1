package transaction

import "time"

// Transaction represents one row of shop sale data.
// Monetary values are stored in cents.
type Transaction struct {
	Date      time.Time // calendar day, UTC midnight
	Product   string
	Quantity  int64
	UnitPrice int64
}

// Revenue returns the line revenue in cents. Revenue is always derived
// from quantity and unit price, never stored independently.
func (t Transaction) Revenue() int64 {
	return t.Quantity * t.UnitPrice
}

// Day truncates a timestamp to its calendar day in UTC. All transaction
// dates pass through here so grouping by date stays exact.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
