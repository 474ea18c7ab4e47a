// Command catalog serves and browses the product catalog.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mytheresa/catalog-browser/app/config"
	"github.com/mytheresa/catalog-browser/app/logging"
)

var (
	// configFile is set by the --config flag.
	configFile string

	v      = viper.New()
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse product categories and their products",
	Long: `catalog serves the category browser over HTTP and renders the same
listings on the command line. Categories and products are read from Postgres
(through gorm or database/sql) or from a SQLite file.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: ./catalog.yaml or ~/.catalog/catalog.yaml)")
	flags.String("gateway", config.GatewayGorm, "data gateway: gorm or sql")
	flags.String("sql-driver", config.DriverPostgres, "driver of the sql gateway: postgres or sqlite")
	flags.String("dsn", "", "database connection string")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")

	_ = v.BindPFlag("gateway", flags.Lookup("gateway"))
	_ = v.BindPFlag("sql_driver", flags.Lookup("sql-driver"))
	_ = v.BindPFlag("dsn", flags.Lookup("dsn"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log_format", flags.Lookup("log-format"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads configuration and the logger before any subcommand runs.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "catalog v0.1.0")
	},
}
