package listing

import (
	"strings"

	"github.com/mytheresa/catalog-browser/models"
)

// FilterCategories returns the categories whose name or description contains
// term, ignoring case. The term is not trimmed. An empty term keeps everything.
func FilterCategories(categories []models.Category, term string) []models.Category {
	visible := make([]models.Category, 0, len(categories))
	needle := strings.ToLower(term)
	for _, c := range categories {
		if MatchesCategory(c, needle) {
			visible = append(visible, c)
		}
	}
	return visible
}

// MatchesCategory reports whether the lower-cased needle is a substring of the
// category name or of its description. A missing description never matches.
func MatchesCategory(c models.Category, needle string) bool {
	if strings.Contains(strings.ToLower(c.Name), needle) {
		return true
	}
	return c.Description != nil && strings.Contains(strings.ToLower(*c.Description), needle)
}
