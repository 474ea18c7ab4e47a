package listing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/catalog-browser/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		newTestProduct(1, 1, "Blue Tee", 5.00, 50, false),
		newTestProduct(2, 1, "Red Tee", 3.00, 5, true),
		newTestProduct(3, 1, "Green Tee", 12.50, 0, false),
		newTestProduct(4, 1, "Black Tee", 5.00, 20, true),
		newTestProduct(5, 1, "White Tee", 7.25, 8, false),
	}
}

func TestSortProducts(t *testing.T) {
	testCases := []struct {
		name        string
		key         SortKey
		expectedIDs []uint
	}{
		{name: "By name", key: SortByName, expectedIDs: []uint{4, 1, 3, 2, 5}},
		{name: "By price ascending, ties keep order", key: SortByPriceLow, expectedIDs: []uint{2, 1, 4, 5, 3}},
		{name: "By price descending, ties keep order", key: SortByPriceHigh, expectedIDs: []uint{3, 5, 1, 4, 2}},
		{name: "Featured first, stable partition", key: SortByFeatured, expectedIDs: []uint{2, 4, 1, 3, 5}},
		{name: "Unknown key keeps order", key: SortKey("random"), expectedIDs: []uint{1, 2, 3, 4, 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products := sampleProducts()

			sorted := SortProducts(products, tc.key)

			assert.Equal(t, tc.expectedIDs, productIDs(sorted))
			assert.Equal(t, []uint{1, 2, 3, 4, 5}, productIDs(products), "input must not be mutated")
		})
	}
}

func TestSortProductsPriceLowScenario(t *testing.T) {
	products := []models.Product{
		newTestProduct(1, 1, "Blue Tee", 5.00, 10, false),
		newTestProduct(2, 1, "Red Tee", 3.00, 10, false),
	}

	assert.Equal(t, []uint{2, 1}, productIDs(SortProducts(products, SortByPriceLow)))
}

func TestSortProductsProperties(t *testing.T) {
	products := sampleProducts()

	for _, key := range SortKeys {
		t.Run(string(key), func(t *testing.T) {
			sorted := SortProducts(products, key)

			require.Len(t, sorted, len(products))
			assert.ElementsMatch(t, productIDs(products), productIDs(sorted), "sorting must be a permutation")
			assert.Equal(t, sorted, SortProducts(sorted, key), "sorting must be idempotent")

			for i := 1; i < len(sorted); i++ {
				a, b := sorted[i-1], sorted[i]
				switch key {
				case SortByName:
					assert.LessOrEqual(t, a.Name, b.Name)
				case SortByPriceLow:
					assert.True(t, a.Price.LessThanOrEqual(b.Price))
				case SortByPriceHigh:
					assert.True(t, a.Price.GreaterThanOrEqual(b.Price))
				case SortByFeatured:
					assert.False(t, !a.IsFeatured && b.IsFeatured, "featured products must come first")
				}
			}
		})
	}
}

func TestSortProductsComparesDecimals(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "A", Price: decimal.RequireFromString("10.10")},
		{ID: 2, Name: "B", Price: decimal.RequireFromString("10.01")},
		{ID: 3, Name: "C", Price: decimal.RequireFromString("9.99")},
	}

	assert.Equal(t, []uint{3, 2, 1}, productIDs(SortProducts(products, SortByPriceLow)))
}

func TestSortProductsEmpty(t *testing.T) {
	sorted := SortProducts(nil, SortByName)

	assert.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

func TestParseSortKey(t *testing.T) {
	for _, key := range []string{"name", "price-low", "price-high", "featured"} {
		k, err := ParseSortKey(key)
		assert.NoError(t, err)
		assert.Equal(t, SortKey(key), k)
	}

	_, err := ParseSortKey("price")
	assert.Error(t, err)
}

func TestParseGridDensity(t *testing.T) {
	d, err := ParseGridDensity(3)
	assert.NoError(t, err)
	assert.Equal(t, GridThree, d)

	d, err = ParseGridDensity(4)
	assert.NoError(t, err)
	assert.Equal(t, GridFour, d)

	_, err = ParseGridDensity(5)
	assert.Error(t, err)
}

func TestSortKeyLabel(t *testing.T) {
	assert.Equal(t, "Featured First", SortByFeatured.Label())
	assert.Equal(t, "Price: High to Low", SortByPriceHigh.Label())
}
