package main

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLIAgainstSQLite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	dsn := filepath.Join(dir, "catalog.db")
	t.Setenv("CATALOG_GATEWAY", "sql")
	t.Setenv("CATALOG_SQL_DRIVER", "sqlite")
	t.Setenv("CATALOG_DSN", dsn)

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema is up to date")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	_, err = db.Exec(`
		INSERT INTO categories (id, slug, name, description, icon_name, display_order) VALUES
			(1, 'tshirts', 'T-Shirts', 'Cotton tees', 'Shirt', 1),
			(2, 'mugs', 'Mugs', NULL, 'Coffee', 2);
		INSERT INTO products (category_id, name, price, stock, is_featured) VALUES
			(1, 'Blue Tee', 5.00, 50, 0),
			(1, 'Red Tee', 3.00, 5, 1);
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	t.Run("products", func(t *testing.T) {
		out, err := execute(t, "products", "tshirts", "--sort", "price-low", "--cols", "3")

		require.NoError(t, err)
		assert.Contains(t, out, "T-Shirts")
		assert.Contains(t, out, "2 Products Available")
		assert.Contains(t, out, "Only 5 left in stock!")
		assert.Less(t, bytes.Index([]byte(out), []byte("Red Tee")), bytes.Index([]byte(out), []byte("Blue Tee")))
	})

	t.Run("unknown category", func(t *testing.T) {
		out, err := execute(t, "products", "nonexistent", "--sort", "featured", "--cols", "4")

		assert.Error(t, err)
		assert.Contains(t, out, "Category Not Found")
	})

	t.Run("invalid sort", func(t *testing.T) {
		_, err := execute(t, "products", "tshirts", "--sort", "cheapest")

		assert.ErrorContains(t, err, "unknown sort key")
	})

	t.Run("categories", func(t *testing.T) {
		out, err := execute(t, "categories", "--search", "mug")

		require.NoError(t, err)
		assert.Contains(t, out, "Mugs")
		assert.NotContains(t, out, "T-Shirts")
	})
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "catalog v0.1.0")
}
