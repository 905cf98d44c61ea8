package model

import "time"

// Expense represents a single spending entry. Category is the grouping
// key matched against Budget allocations.
type Expense struct {
	Date        time.Time // zero value means no date was recorded
	Category    string
	Description string
	Amount      float64
	ID          int
}
