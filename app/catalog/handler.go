package catalog

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mytheresa/catalog-browser/app/api"
	"github.com/mytheresa/catalog-browser/app/icons"
	"github.com/mytheresa/catalog-browser/app/listing"
	"github.com/mytheresa/catalog-browser/app/logging"
)

type Category struct {
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Icon        icons.Icon `json:"icon"`
}

type SortOption struct {
	Value listing.SortKey `json:"value"`
	Label string          `json:"label"`
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type EmptyState struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    Link   `json:"link"`
}

type Response struct {
	Category    Category              `json:"category"`
	Heading     string                `json:"heading"`
	Total       int                   `json:"total"`
	Sort        listing.SortKey       `json:"sort"`
	SortOptions []SortOption          `json:"sort_options"`
	GridColumns int                   `json:"grid_columns"`
	Products    []listing.ProductCard `json:"products"`
	Empty       *EmptyState           `json:"empty,omitempty"`
}

type NotFoundResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Back    Link   `json:"back"`
}

var backToCategories = Link{Label: "Back to Categories", Href: "/"}

type CatalogHandler struct {
	repo   listing.Gateway
	logger *slog.Logger
}

func NewCatalogHandler(r listing.Gateway, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		repo:   r,
		logger: logging.OrDiscard(logger),
	}
}

// HandleGetCategory serves GET /category/{slug}. Invalid ?sort= and ?cols=
// values fall back to the defaults.
func (h *CatalogHandler) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	page := listing.NewProductListing(h.repo, slug, h.logger.With("request_id", api.RequestID(r.Context())))

	if s := r.URL.Query().Get("sort"); s != "" {
		if key, err := listing.ParseSortKey(s); err == nil {
			page.SetSortKey(key)
		}
	}
	if cStr := r.URL.Query().Get("cols"); cStr != "" {
		if c, err := strconv.Atoi(cStr); err == nil {
			if d, err := listing.ParseGridDensity(c); err == nil {
				page.SetGridDensity(d)
			}
		}
	}

	page.Load(r.Context())

	category := page.Category()
	if page.State() == listing.StateNotFound || category == nil {
		api.JSONResponse(w, http.StatusNotFound, NotFoundResponse{
			Error:   "Category not found",
			Message: "The category you're looking for doesn't exist.",
			Back:    backToCategories,
		})
		return
	}

	products := page.SortedProducts()
	response := Response{
		Category: Category{
			Slug:        category.Slug,
			Name:        category.Name,
			Description: category.DescriptionText(),
			Icon:        icons.Resolve(category.IconName),
		},
		Heading:     listing.ProductsHeading(len(products)),
		Total:       len(products),
		Sort:        page.SortKey(),
		SortOptions: sortOptions(),
		GridColumns: int(page.GridDensity()),
		Products:    listing.NewProductCards(products),
	}
	if len(products) == 0 {
		response.Empty = &EmptyState{
			Title:   "No Products Yet",
			Message: "This category is currently being stocked. Check back soon!",
			Link:    Link{Label: "Browse Other Categories", Href: "/"},
		}
	}

	api.OKResponse(w, response)
}

func sortOptions() []SortOption {
	options := make([]SortOption, len(listing.SortKeys))
	for i, k := range listing.SortKeys {
		options[i] = SortOption{Value: k, Label: k.Label()}
	}
	return options
}
