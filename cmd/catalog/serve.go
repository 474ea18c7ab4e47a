package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mytheresa/catalog-browser/app/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Long: `Serve the category browser:
  GET /                    root category listing
  GET /categories?search=  root listing narrowed by a search term
  GET /category/{slug}     products of a category (?sort=, ?cols=)`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "localhost:8080", "listen address")
	_ = v.BindPFlag("http_addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gateway, closeGateway, err := openGateway(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeGateway()

	return server.Run(ctx, cfg.HTTPAddr, server.NewHandler(gateway, logger), logger)
}
