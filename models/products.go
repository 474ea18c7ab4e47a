package models

import (
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the highest stock count that still triggers a low stock notice.
const LowStockThreshold = 10

// Product represents a product in the catalog.
// It belongs to exactly one category and is read-only to this service.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	CategoryID  uint            `gorm:"column:category_id;not null;index"`
	Name        string          `gorm:"not null"`
	Description *string         `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SKU         *string         `gorm:"column:sku"`
	Stock       int             `gorm:"column:stock;not null;default:0"`
	IsFeatured  bool            `gorm:"column:is_featured;not null;default:false"`
	ImageURL    *string         `gorm:"column:image_url"`
}

func (p *Product) TableName() string {
	return "products"
}

// Unavailable reports whether the product cannot be purchased.
// A zero stock count forces this state regardless of other flags.
func (p Product) Unavailable() bool {
	return p.Stock <= 0
}

// LowStock reports whether the stock count is in (0, LowStockThreshold].
func (p Product) LowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}

// DisplayPrice returns the price fixed to two fractional digits.
func (p Product) DisplayPrice() string {
	return p.Price.StringFixed(2)
}
