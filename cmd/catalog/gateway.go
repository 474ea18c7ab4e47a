package main

import (
	"context"
	"fmt"

	"github.com/mytheresa/catalog-browser/app/config"
	"github.com/mytheresa/catalog-browser/app/database"
	"github.com/mytheresa/catalog-browser/app/listing"
	"github.com/mytheresa/catalog-browser/models"
)

// openGateway connects the configured data gateway and returns it with a close function.
func openGateway(ctx context.Context, cfg *config.Config) (listing.Gateway, func() error, error) {
	dsn := cfg.DatabaseDSN()

	switch cfg.Gateway {
	case config.GatewayGorm:
		db, closeDB, err := database.NewGorm(dsn)
		if err != nil {
			return nil, nil, err
		}
		return models.NewCatalogRepository(db), closeDB, nil
	case config.GatewaySQL:
		db, err := database.OpenSQL(ctx, cfg.SQLDriver, dsn)
		if err != nil {
			return nil, nil, err
		}
		return models.NewSQLCatalogRepository(db, database.Placeholder(cfg.SQLDriver)), db.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported gateway %q", cfg.Gateway)
}
