package listing

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/mytheresa/catalog-browser/app/logging"
	"github.com/mytheresa/catalog-browser/models"
)

// CategoryListing is the controller of the root listing view.
type CategoryListing struct {
	gateway CategoryProvider
	logger  *slog.Logger

	mu         sync.RWMutex
	generation uint64
	loading    bool
	categories []models.Category
	searchTerm string
	err        error
}

// NewCategoryListing returns a listing in the loading state. Call Load to fill it.
func NewCategoryListing(gateway CategoryProvider, logger *slog.Logger) *CategoryListing {
	return &CategoryListing{
		gateway:    gateway,
		logger:     logging.OrDiscard(logger),
		loading:    true,
		categories: []models.Category{},
	}
}

// Load fetches the categories once. A failure is logged and leaves an empty
// collection; loading is cleared either way.
func (l *CategoryListing) Load(ctx context.Context) {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.loading = true
	l.mu.Unlock()

	categories, err := l.gateway.FetchCategories(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.logger.Debug("discarding stale category load")
		return
	}

	l.loading = false
	l.err = err
	if err != nil {
		l.logger.Error("error loading categories", "error", err)
		l.categories = []models.Category{}
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	l.categories = categories
}

func (l *CategoryListing) SetSearchTerm(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.searchTerm = term
}

func (l *CategoryListing) SearchTerm() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.searchTerm
}

func (l *CategoryListing) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Err returns the failure of the last load, if any.
func (l *CategoryListing) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Categories returns a copy of the full loaded collection.
func (l *CategoryListing) Categories() []models.Category {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.categories)
}

// VisibleCategories derives the categories matching the current search term.
func (l *CategoryListing) VisibleCategories() []models.Category {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return FilterCategories(l.categories, l.searchTerm)
}
