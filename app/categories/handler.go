package categories

import (
	"log/slog"
	"net/http"

	"github.com/mytheresa/catalog-browser/app/api"
	"github.com/mytheresa/catalog-browser/app/listing"
	"github.com/mytheresa/catalog-browser/app/logging"
)

// EmptyMessage is shown when no category matches the search.
const EmptyMessage = "No categories found matching your search."

type Response struct {
	Search       string                 `json:"search"`
	Total        int                    `json:"total"`
	Categories   []listing.CategoryCard `json:"categories"`
	EmptyMessage string                 `json:"empty_message,omitempty"`
}

type CategoryHandler struct {
	repo   listing.CategoryProvider
	logger *slog.Logger
}

func NewCategoryHandler(r listing.CategoryProvider, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		repo:   r,
		logger: logging.OrDiscard(logger),
	}
}

// HandleGetAll serves the root listing, optionally narrowed by ?search=.
// A failed load renders as an empty listing.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	page := listing.NewCategoryListing(h.repo, h.logger.With("request_id", api.RequestID(r.Context())))
	page.Load(r.Context())
	page.SetSearchTerm(r.URL.Query().Get("search"))

	visible := page.VisibleCategories()
	response := Response{
		Search:     page.SearchTerm(),
		Total:      len(visible),
		Categories: listing.NewCategoryCards(visible),
	}
	if len(visible) == 0 {
		response.EmptyMessage = EmptyMessage
	}

	api.OKResponse(w, response)
}
