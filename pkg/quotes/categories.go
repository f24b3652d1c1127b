package quotes

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortCategories sorts category labels in place using locale-aware
// collation so mixed-case and accented labels order the way a user
// expects in a filter dropdown.
func SortCategories(categories []string) {
	c := collate.New(language.Und, collate.IgnoreCase)
	c.SortStrings(categories)
}
