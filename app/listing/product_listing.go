package listing

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/mytheresa/catalog-browser/app/logging"
	"github.com/mytheresa/catalog-browser/models"
)

// LoadState is the lifecycle state of a ProductListing.
type LoadState int

const (
	StateLoading LoadState = iota
	StateReady
	// StateNotFound is terminal: the slug resolved to no category, or the
	// category lookup failed.
	StateNotFound
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateNotFound:
		return "not-found"
	}
	return "unknown"
}

// ProductListing is the controller of the category/{slug} view.
//
// Loads are sequential: the category is resolved by slug, then its products are
// fetched by category id. Every load is tagged with a generation; results of a
// load superseded by Navigate are dropped instead of committed.
type ProductListing struct {
	gateway Gateway
	logger  *slog.Logger

	mu          sync.RWMutex
	generation  uint64
	slug        string
	state       LoadState
	category    *models.Category
	products    []models.Product
	sortKey     SortKey
	gridDensity GridDensity
	err         error
}

func NewProductListing(gateway Gateway, slug string, logger *slog.Logger) *ProductListing {
	return &ProductListing{
		gateway:     gateway,
		logger:      logging.OrDiscard(logger),
		slug:        slug,
		state:       StateLoading,
		products:    []models.Product{},
		sortKey:     DefaultSortKey,
		gridDensity: DefaultGridDensity,
	}
}

// Load runs the load protocol for the current slug.
func (l *ProductListing) Load(ctx context.Context) {
	l.Navigate(ctx, l.Slug())
}

// Navigate switches the listing to slug and loads it. Any load still in flight
// for a previous slug loses the right to commit.
func (l *ProductListing) Navigate(ctx context.Context, slug string) {
	gen := l.begin(slug)
	log := l.logger.With("slug", slug)

	category, err := l.gateway.FetchCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			log.Info("category not found")
			l.commit(gen, func() {
				l.state = StateNotFound
			})
			return
		}
		log.Error("error loading category", "error", err)
		l.commit(gen, func() {
			l.state = StateNotFound
			l.err = err
		})
		return
	}

	if !l.commit(gen, func() { l.category = category }) {
		return
	}

	products, err := l.gateway.FetchProductsByCategory(ctx, category.ID)
	if err != nil {
		log.Error("error loading products", "category_id", category.ID, "error", err)
		l.commit(gen, func() {
			l.state = StateReady
			l.err = err
		})
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	l.commit(gen, func() {
		l.state = StateReady
		l.products = products
	})
}

// begin resets the listing for slug and returns the generation of the new load.
func (l *ProductListing) begin(slug string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.generation++
	l.slug = slug
	l.state = StateLoading
	l.category = nil
	l.products = []models.Product{}
	l.err = nil
	return l.generation
}

// commit applies fn if gen is still the current generation.
func (l *ProductListing) commit(gen uint64, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.logger.Debug("discarding stale product load", "generation", gen, "current", l.generation)
		return false
	}
	fn()
	return true
}

func (l *ProductListing) SetSortKey(key SortKey) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sortKey = key
}

func (l *ProductListing) SetGridDensity(d GridDensity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gridDensity = d
}

func (l *ProductListing) SortKey() SortKey {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sortKey
}

func (l *ProductListing) GridDensity() GridDensity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.gridDensity
}

func (l *ProductListing) Slug() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.slug
}

func (l *ProductListing) State() LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Err returns the failure of the last load, if any. A missing category is not
// a failure.
func (l *ProductListing) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Category returns the resolved category, or nil.
func (l *ProductListing) Category() *models.Category {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.category == nil {
		return nil
	}
	c := *l.category
	return &c
}

// Products returns a copy of the loaded products in fetch order.
func (l *ProductListing) Products() []models.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.products)
}

// SortedProducts derives the products ordered by the current sort key.
func (l *ProductListing) SortedProducts() []models.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return SortProducts(l.products, l.sortKey)
}
