package models

import (
	"math"
	"strings"
)

// CategoryAll is the category sentinel that disables category filtering
const CategoryAll = "all"

// MenuItem represents a dish or drink listed on the menu
// Items are immutable once loaded
type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

// WellFormed reports whether the item carries the fields needed to list and sell it
func (m MenuItem) WellFormed() bool {
	if m.ID < 1 {
		return false
	}
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Category) == "" {
		return false
	}
	if math.IsNaN(m.Price) || math.IsInf(m.Price, 0) || m.Price < 0 {
		return false
	}
	return true
}

// FilterCriteria holds the active category and free-text search term
type FilterCriteria struct {
	Category   string `json:"category"`
	SearchTerm string `json:"search"`
}
