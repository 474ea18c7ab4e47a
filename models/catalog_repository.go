package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// CatalogRepository reads categories and products through gorm.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

// FetchCategories returns every category ordered by display order.
func (r *CatalogRepository) FetchCategories(ctx context.Context) ([]Category, error) {
	categories := []Category{}
	if err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, transportError("fetch categories", err)
	}
	return categories, nil
}

// FetchCategoryBySlug returns the category with the exact slug, or ErrCategoryNotFound.
func (r *CatalogRepository) FetchCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, transportError("fetch category by slug", err)
	}
	return &category, nil
}

// FetchProductsByCategory returns the products of a category in no particular order.
func (r *CatalogRepository) FetchProductsByCategory(ctx context.Context, categoryID uint) ([]Product, error) {
	products := []Product{}
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&products).Error; err != nil {
		return nil, transportError("fetch products by category", err)
	}
	return products, nil
}
