package listing

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mytheresa/catalog-browser/models"
)

// --- Fixtures ---

func ptr(s string) *string {
	return &s
}

func newTestCategory(id uint, slug, name string, description *string, order int) models.Category {
	return models.Category{
		ID:           id,
		Slug:         slug,
		Name:         name,
		Description:  description,
		IconName:     "Shirt",
		DisplayOrder: order,
	}
}

func newTestProduct(id, categoryID uint, name string, price float64, stock int, featured bool) models.Product {
	return models.Product{
		ID:         id,
		CategoryID: categoryID,
		Name:       name,
		Price:      decimal.NewFromFloat(price),
		Stock:      stock,
		IsFeatured: featured,
	}
}

func productIDs(products []models.Product) []uint {
	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

var errBackendDown = errors.New("backend down")

// --- Gateways ---

// countingGateway records the calls made against an underlying gateway.
type countingGateway struct {
	Gateway

	mu            sync.Mutex
	categoryCalls int
	slugCalls     []string
	productCalls  []uint
}

func (g *countingGateway) FetchCategories(ctx context.Context) ([]models.Category, error) {
	g.mu.Lock()
	g.categoryCalls++
	g.mu.Unlock()
	return g.Gateway.FetchCategories(ctx)
}

func (g *countingGateway) FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	g.mu.Lock()
	g.slugCalls = append(g.slugCalls, slug)
	g.mu.Unlock()
	return g.Gateway.FetchCategoryBySlug(ctx, slug)
}

func (g *countingGateway) FetchProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	g.mu.Lock()
	g.productCalls = append(g.productCalls, categoryID)
	g.mu.Unlock()
	return g.Gateway.FetchProductsByCategory(ctx, categoryID)
}

// failingGateway fails the operations whose error field is set.
type failingGateway struct {
	Gateway

	categoriesErr error
	slugErr       error
	productsErr   error
}

func (g *failingGateway) FetchCategories(ctx context.Context) ([]models.Category, error) {
	if g.categoriesErr != nil {
		return nil, g.categoriesErr
	}
	return g.Gateway.FetchCategories(ctx)
}

func (g *failingGateway) FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if g.slugErr != nil {
		return nil, g.slugErr
	}
	return g.Gateway.FetchCategoryBySlug(ctx, slug)
}

func (g *failingGateway) FetchProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	if g.productsErr != nil {
		return nil, g.productsErr
	}
	return g.Gateway.FetchProductsByCategory(ctx, categoryID)
}

// blockingGateway holds slug lookups for one slug until release is closed.
type blockingGateway struct {
	Gateway

	blockSlug string
	entered   chan struct{}
	release   chan struct{}
}

func (g *blockingGateway) FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if slug == g.blockSlug {
		close(g.entered)
		<-g.release
	}
	return g.Gateway.FetchCategoryBySlug(ctx, slug)
}
