package models

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
)

var (
	categoryColumns = []string{"id", "slug", "name", "description", "icon_name", "display_order"}
	productColumns  = []string{"id", "category_id", "name", "description", "price", "sku", "stock", "is_featured", "image_url"}
)

// SQLCatalogRepository reads categories and products with plain database/sql,
// building queries with squirrel. The placeholder format must match the driver.
type SQLCatalogRepository struct {
	db      *sql.DB
	builder squirrel.StatementBuilderType
}

func NewSQLCatalogRepository(db *sql.DB, placeholder squirrel.PlaceholderFormat) *SQLCatalogRepository {
	return &SQLCatalogRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (r *SQLCatalogRepository) FetchCategories(ctx context.Context) ([]Category, error) {
	const op = "fetch categories"

	query, args, err := r.builder.
		Select(categoryColumns...).
		From("categories").
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, transportError(op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, transportError(op, err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, transportError(op, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, transportError(op, err)
	}
	return categories, nil
}

func (r *SQLCatalogRepository) FetchCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	const op = "fetch category by slug"

	query, args, err := r.builder.
		Select(categoryColumns...).
		From("categories").
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, transportError(op, err)
	}

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, transportError(op, err)
	}
	return &c, nil
}

func (r *SQLCatalogRepository) FetchProductsByCategory(ctx context.Context, categoryID uint) ([]Product, error) {
	const op = "fetch products by category"

	query, args, err := r.builder.
		Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return nil, transportError(op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, transportError(op, err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.CategoryID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.SKU,
			&p.Stock,
			&p.IsFeatured,
			&p.ImageURL,
		); err != nil {
			return nil, transportError(op, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, transportError(op, err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.IconName, &c.DisplayOrder)
	return c, err
}
