package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/catalog-browser/app/api"
	"github.com/mytheresa/catalog-browser/models"
)

func newTestHandler() http.Handler {
	repo := models.NewMemoryCatalogRepository(
		[]models.Category{
			{ID: 1, Slug: "tshirts", Name: "T-Shirts", DisplayOrder: 1},
			{ID: 2, Slug: "mugs", Name: "Mugs", DisplayOrder: 2},
		},
		[]models.Product{
			{ID: 1, CategoryID: 1, Name: "Blue Tee", Stock: 20},
		},
	)
	return NewHandler(repo, nil)
}

func TestRoutes(t *testing.T) {
	testCases := []struct {
		name               string
		path               string
		expectedStatusCode int
	}{
		{name: "Root listing", path: "/", expectedStatusCode: http.StatusOK},
		{name: "Categories listing", path: "/categories?search=mug", expectedStatusCode: http.StatusOK},
		{name: "Category view", path: "/category/tshirts", expectedStatusCode: http.StatusOK},
		{name: "Unknown category", path: "/category/nonexistent", expectedStatusCode: http.StatusNotFound},
		{name: "Health", path: "/healthz", expectedStatusCode: http.StatusOK},
		{name: "Unknown route", path: "/nope", expectedStatusCode: http.StatusNotFound},
	}

	handler := newTestHandler()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, httptest.NewRequest("GET", tc.path, nil))

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(api.RequestIDHeader))
		})
	}
}

func TestRootListingBody(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/categories?search=mug", nil))

	var body struct {
		Total      int `json:"total"`
		Categories []struct {
			Slug string `json:"slug"`
		} `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "mugs", body.Categories[0].Slug)
}
