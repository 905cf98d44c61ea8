// Package model defines the records tracked by pocketbook.
package model

import "time"

// Income represents a single earning entry.
type Income struct {
	Date        time.Time // zero value means no date was recorded
	Source      string
	Description string
	Amount      float64
	ID          int
}
