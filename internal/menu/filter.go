package menu

import (
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the items that match both the category and the search term
// of criteria, in their original order. Malformed items never match.
func Filter(items []models.MenuItem, criteria models.FilterCriteria) []models.MenuItem {
	// A Caser holds state and must not be shared between goroutines.
	lower := cases.Lower(language.Und)

	category := lower.String(strings.TrimSpace(criteria.Category))
	allCategories := category == "" || category == models.CategoryAll
	term := lower.String(criteria.SearchTerm)

	result := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if !item.WellFormed() {
			continue
		}
		if !allCategories && lower.String(strings.TrimSpace(item.Category)) != category {
			continue
		}
		if term != "" &&
			!strings.Contains(lower.String(item.Name), term) &&
			!strings.Contains(lower.String(item.Description), term) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// Categories returns the distinct item categories in first-seen order.
// Categories differing only by case are reported once, using the first spelling.
func Categories(items []models.MenuItem) []string {
	lower := cases.Lower(language.Und)

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, item := range items {
		if !item.WellFormed() {
			continue
		}
		name := strings.TrimSpace(item.Category)
		key := lower.String(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, name)
	}
	return categories
}
