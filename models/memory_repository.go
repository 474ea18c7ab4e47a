package models

import (
	"context"
	"slices"
	"sync"
)

// MemoryCatalogRepository is an in-memory catalog, used in place of a database
// in tests and local demos.
type MemoryCatalogRepository struct {
	mu         sync.RWMutex
	categories []Category
	products   []Product
}

func NewMemoryCatalogRepository(categories []Category, products []Product) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		categories: slices.Clone(categories),
		products:   slices.Clone(products),
	}
}

func (m *MemoryCatalogRepository) FetchCategories(ctx context.Context) ([]Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, transportError("fetch categories", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	categories := slices.Clone(m.categories)
	if categories == nil {
		categories = []Category{}
	}
	slices.SortStableFunc(categories, func(a, b Category) int {
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder - b.DisplayOrder
		}
		return int(a.ID) - int(b.ID)
	})
	return categories, nil
}

func (m *MemoryCatalogRepository) FetchCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, transportError("fetch category by slug", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (m *MemoryCatalogRepository) FetchProductsByCategory(ctx context.Context, categoryID uint) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, transportError("fetch products by category", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	products := []Product{}
	for _, p := range m.products {
		if p.CategoryID == categoryID {
			products = append(products, p)
		}
	}
	return products, nil
}
