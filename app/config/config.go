package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	GatewayGorm = "gorm"
	GatewaySQL  = "sql"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the service configuration.
type Config struct {
	HTTPAddr  string `mapstructure:"http_addr"`
	Gateway   string `mapstructure:"gateway"`
	SQLDriver string `mapstructure:"sql_driver"`
	DSN       string `mapstructure:"dsn"`

	PostgresHost     string `mapstructure:"postgres_host"`
	PostgresPort     int    `mapstructure:"postgres_port"`
	PostgresUser     string `mapstructure:"postgres_user"`
	PostgresPassword string `mapstructure:"postgres_password"`
	PostgresDB       string `mapstructure:"postgres_db"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// SetDefaults registers default values and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", "localhost:8080")
	v.SetDefault("gateway", GatewayGorm)
	v.SetDefault("sql_driver", DriverPostgres)
	v.SetDefault("dsn", "")
	v.SetDefault("postgres_host", "localhost")
	v.SetDefault("postgres_port", 5432)
	v.SetDefault("postgres_user", "postgres")
	v.SetDefault("postgres_password", "")
	v.SetDefault("postgres_db", "catalog")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// Load reads .env (when present), an optional catalog.yaml and CATALOG_* variables.
func Load(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load()

	SetDefaults(v)

	if v.ConfigFileUsed() == "" {
		v.SetConfigName("catalog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.catalog/")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown gateway, driver and log format values.
func (c *Config) Validate() error {
	switch c.Gateway {
	case GatewayGorm, GatewaySQL:
	default:
		return fmt.Errorf("invalid gateway %q: want %q or %q", c.Gateway, GatewayGorm, GatewaySQL)
	}

	switch c.SQLDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid sql_driver %q: want %q or %q", c.SQLDriver, DriverPostgres, DriverSQLite)
	}

	if c.Gateway == GatewayGorm && c.SQLDriver == DriverSQLite {
		return errors.New("the gorm gateway only supports postgres")
	}
	if c.SQLDriver == DriverSQLite && c.DSN == "" {
		return errors.New("dsn is required for the sqlite driver")
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: want text or json", c.LogFormat)
	}

	if c.HTTPAddr == "" {
		return errors.New("http_addr must not be empty")
	}
	return nil
}

// DatabaseDSN returns DSN, or a postgres URL assembled from the Postgres* fields.
func (c *Config) DatabaseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     fmt.Sprintf("%s:%d", c.PostgresHost, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
