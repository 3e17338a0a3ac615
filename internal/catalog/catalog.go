// Package catalog holds the compiled-in French vocabulary grouped by category.
package catalog

import (
	"fmt"
	"strings"

	"github.com/example/legame/pkg/models"
)

// Category names a fixed subset of the catalog
type Category string

const (
	Basic    Category = "basic"
	Common   Category = "common"
	Family   Category = "family"
	Anatomy  Category = "anatomy"
	Advanced Category = "advanced"
	// All is the union of every other category
	All Category = "all"
)

// named lists every category except All, in display order
var named = []Category{Basic, Common, Family, Anatomy, Advanced}

var titles = map[Category]string{
	Basic:    "Basic Words",
	Common:   "Common Words",
	Family:   "Family Words",
	Anatomy:  "Anatomy Words",
	Advanced: "Advanced Words",
	All:      "All Words",
}

// aliases maps alternative spellings accepted from players onto categories
var aliases = map[string]Category{
	"everyday": Common,
	"*":        All,
}

// Categories returns every category, All last
func Categories() []Category {
	out := make([]Category, 0, len(named)+1)
	out = append(out, named...)
	return append(out, All)
}

// Named returns the categories that own word lists, without All
func Named() []Category {
	return append([]Category(nil), named...)
}

// ParseCategory resolves player input such as "Family" or "everyday"
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	c := Category(key)
	if c == All {
		return c, nil
	}
	if _, ok := lists[c]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Title returns the human readable name of the category
func (c Category) Title() string {
	if t, ok := titles[c]; ok {
		return t
	}
	return string(c)
}

// Words returns the ordered word list for a category. All yields the union of
// the named lists in category order with cross-category repeats removed.
// An unknown category is a programming error and panics.
func Words(c Category) []models.Word {
	if c == All {
		return union()
	}
	list, ok := lists[c]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown category %q", c))
	}
	return append([]models.Word(nil), list...)
}

// Contains reports whether the word belongs to the category's list
func Contains(c Category, w models.Word) bool {
	if c == All {
		for _, n := range named {
			if Contains(n, w) {
				return true
			}
		}
		return false
	}
	list, ok := lists[c]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown category %q", c))
	}
	for _, entry := range list {
		if entry.Same(w) {
			return true
		}
	}
	return false
}

// CategoriesOf returns the named categories a word belongs to
func CategoriesOf(w models.Word) []Category {
	var out []Category
	for _, c := range named {
		if Contains(c, w) {
			out = append(out, c)
		}
	}
	return out
}

func union() []models.Word {
	seen := make(map[models.WordKey]bool)
	var out []models.Word
	for _, c := range named {
		for _, w := range lists[c] {
			if seen[w.Key()] {
				continue
			}
			seen[w.Key()] = true
			out = append(out, w)
		}
	}
	return out
}
