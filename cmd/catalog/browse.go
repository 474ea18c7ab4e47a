package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mytheresa/catalog-browser/app/listing"
	"github.com/mytheresa/catalog-browser/app/terminal"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories, optionally filtered by a search term",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")

		gateway, closeGateway, err := openGateway(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeGateway()

		page := listing.NewCategoryListing(gateway, logger)
		page.Load(cmd.Context())
		page.SetSearchTerm(search)

		return terminal.NewRenderer(cmd.OutOrStdout()).Categories(page)
	},
}

var productsCmd = &cobra.Command{
	Use:   "products <slug>",
	Short: "List the products of a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sortFlag, _ := cmd.Flags().GetString("sort")
		cols, _ := cmd.Flags().GetInt("cols")

		key, err := listing.ParseSortKey(sortFlag)
		if err != nil {
			return err
		}
		density, err := listing.ParseGridDensity(cols)
		if err != nil {
			return err
		}

		gateway, closeGateway, err := openGateway(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeGateway()

		page := listing.NewProductListing(gateway, args[0], logger)
		page.SetSortKey(key)
		page.SetGridDensity(density)
		page.Load(cmd.Context())

		if err := terminal.NewRenderer(cmd.OutOrStdout()).Products(page); err != nil {
			return err
		}
		if page.State() == listing.StateNotFound {
			return fmt.Errorf("category %q not found", args[0])
		}
		return nil
	},
}

func init() {
	categoriesCmd.Flags().String("search", "", "case-insensitive search on name and description")

	productsCmd.Flags().String("sort", string(listing.DefaultSortKey), "sort order: featured, name, price-low or price-high")
	productsCmd.Flags().Int("cols", int(listing.DefaultGridDensity), "grid columns: 3 or 4")
}
