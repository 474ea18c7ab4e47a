package listing

import (
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mytheresa/catalog-browser/models"
)

// SortKey selects the order of a product listing.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByFeatured  SortKey = "featured"
)

// DefaultSortKey is the order a product listing starts with.
const DefaultSortKey = SortByFeatured

// SortKeys lists the selectable orders in the order they are offered.
var SortKeys = []SortKey{SortByFeatured, SortByName, SortByPriceLow, SortByPriceHigh}

// Label returns the human readable name of the order.
func (k SortKey) Label() string {
	switch k {
	case SortByFeatured:
		return "Featured First"
	case SortByName:
		return "Name (A-Z)"
	case SortByPriceLow:
		return "Price: Low to High"
	case SortByPriceHigh:
		return "Price: High to Low"
	}
	return string(k)
}

// ParseSortKey validates a user supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !slices.Contains(SortKeys, k) {
		return "", fmt.Errorf("unknown sort key %q", s)
	}
	return k, nil
}

// GridDensity is the number of product columns on wide layouts.
type GridDensity int

const (
	GridThree GridDensity = 3
	GridFour  GridDensity = 4
)

const DefaultGridDensity = GridFour

// ParseGridDensity validates a column count; only 3 and 4 are allowed.
func ParseGridDensity(n int) (GridDensity, error) {
	switch d := GridDensity(n); d {
	case GridThree, GridFour:
		return d, nil
	}
	return 0, fmt.Errorf("unsupported grid density %d", n)
}

// SortProducts returns a sorted copy of products; the input is left untouched.
// Sorting is stable, so featured keeps the prior relative order inside the
// featured and non-featured groups. An unknown key returns the copy as is.
func SortProducts(products []models.Product, key SortKey) []models.Product {
	sorted := slices.Clone(products)
	if sorted == nil {
		sorted = []models.Product{}
	}

	switch key {
	case SortByName:
		col := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b models.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortByPriceLow:
		slices.SortStableFunc(sorted, func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortByPriceHigh:
		slices.SortStableFunc(sorted, func(a, b models.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortByFeatured:
		slices.SortStableFunc(sorted, func(a, b models.Product) int {
			return featuredRank(a) - featuredRank(b)
		})
	}
	return sorted
}

func featuredRank(p models.Product) int {
	if p.IsFeatured {
		return 0
	}
	return 1
}
