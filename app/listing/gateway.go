// Package listing holds the page controllers of the catalog browser: they load a
// collection once through a Gateway, keep the user-selected view parameters and
// derive the filtered or sorted view the presentation layers render.
package listing

import (
	"context"

	"github.com/mytheresa/catalog-browser/models"
)

// CategoryProvider is the part of the gateway the root listing needs.
type CategoryProvider interface {
	FetchCategories(ctx context.Context) ([]models.Category, error)
}

// Gateway issues read queries against the categories and products collections.
// FetchCategoryBySlug reports an unknown slug with models.ErrCategoryNotFound;
// every other failure is a *models.TransportError.
type Gateway interface {
	CategoryProvider
	FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	FetchProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error)
}
