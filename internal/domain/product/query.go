package product

import "slices"

// SortableFields lists the product columns a listing may be ordered by.
var SortableFields = []string{"id", "name", "description", "price"}

// IsSortable reports whether field is a permitted sort column.
func IsSortable(field string) bool {
	return slices.Contains(SortableFields, field)
}

// Query filters and orders a product listing.
// Nil bounds are not applied; an empty SortBy keeps the store order (by id).
type Query struct {
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Desc     bool
}
