package listing

import (
	"fmt"

	"github.com/mytheresa/catalog-browser/app/icons"
	"github.com/mytheresa/catalog-browser/models"
)

const (
	ActionAddToCart   = "Add to Cart"
	ActionUnavailable = "Unavailable"
)

// CategoryCard is the read-only view of a category in the root listing.
type CategoryCard struct {
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        icons.Icon `json:"icon"`
	Href        string     `json:"href"`
}

// CategoryPath returns the navigation target of a category.
func CategoryPath(slug string) string {
	return "/category/" + slug
}

func NewCategoryCard(c models.Category) CategoryCard {
	return CategoryCard{
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.DescriptionText(),
		Icon:        icons.Resolve(c.IconName),
		Href:        CategoryPath(c.Slug),
	}
}

func NewCategoryCards(categories []models.Category) []CategoryCard {
	cards := make([]CategoryCard, len(categories))
	for i, c := range categories {
		cards[i] = NewCategoryCard(c)
	}
	return cards
}

// ProductCard is the read-only view of a product with its derived display flags.
type ProductCard struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	SKU         string `json:"sku,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Stock       int    `json:"stock"`
	Featured    bool   `json:"featured"`
	Unavailable bool   `json:"unavailable"`
	LowStock    bool   `json:"low_stock"`
	StockNotice string `json:"stock_notice,omitempty"`
	Action      string `json:"action"`
}

func NewProductCard(p models.Product) ProductCard {
	card := ProductCard{
		ID:          p.ID,
		Name:        p.Name,
		Description: deref(p.Description),
		Price:       p.DisplayPrice(),
		SKU:         deref(p.SKU),
		ImageURL:    deref(p.ImageURL),
		Stock:       p.Stock,
		Featured:    p.IsFeatured,
		Unavailable: p.Unavailable(),
		LowStock:    p.LowStock(),
		Action:      ActionAddToCart,
	}
	if card.Unavailable {
		card.Action = ActionUnavailable
	}
	if card.LowStock {
		card.StockNotice = fmt.Sprintf("Only %d left in stock!", p.Stock)
	}
	return card
}

func NewProductCards(products []models.Product) []ProductCard {
	cards := make([]ProductCard, len(products))
	for i, p := range products {
		cards[i] = NewProductCard(p)
	}
	return cards
}

// ProductsHeading returns the "N Products Available" line of a listing.
func ProductsHeading(n int) string {
	if n == 1 {
		return "1 Product Available"
	}
	return fmt.Sprintf("%d Products Available", n)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
