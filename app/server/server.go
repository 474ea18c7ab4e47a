// Package server wires the HTTP presentation layer onto a ServeMux.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mytheresa/catalog-browser/app/api"
	"github.com/mytheresa/catalog-browser/app/catalog"
	"github.com/mytheresa/catalog-browser/app/categories"
	"github.com/mytheresa/catalog-browser/app/listing"
	"github.com/mytheresa/catalog-browser/app/logging"
)

const shutdownTimeout = 10 * time.Second

// NewHandler returns the routed, instrumented handler of the service.
func NewHandler(gateway listing.Gateway, logger *slog.Logger) http.Handler {
	logger = logging.OrDiscard(logger)

	categoryHandler := categories.NewCategoryHandler(gateway, logger)
	catalogHandler := catalog.NewCatalogHandler(gateway, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /category/{slug}", catalogHandler.HandleGetCategory)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		api.OKResponse(w, map[string]string{"status": "ok"})
	})

	return api.WithRequestID(api.WithAccessLog(logger, mux))
}

// Run serves handler on addr until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	logger = logging.OrDiscard(logger)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
