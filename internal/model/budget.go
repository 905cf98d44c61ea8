package model

// Budget is the allocated spending ceiling for one category. Categories
// are not required to be unique; lookups keep the last-seen budget per
// category.
type Budget struct {
	Category string
	Amount   float64
	ID       int
}
