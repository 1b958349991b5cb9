package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            int           `envconfig:"PORT" default:"4000"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	DatabaseType    string        `envconfig:"DATABASE_TYPE" default:"postgres"`
	CORSOrigin      string        `envconfig:"CORS_ORIGIN" default:"*"`
	QueryTimeout    time.Duration `envconfig:"QUERY_TIMEOUT" default:"5s"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("idea-board", flag.ContinueOnError)

	// Env values become the flag defaults so flags win when given
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", cfg.CORSOrigin, "Allowed cross-origin caller(s), comma separated")
	fs.DurationVar(&cfg.QueryTimeout, "query-timeout", cfg.QueryTimeout, "Timeout for each store statement")
	fs.IntVar(&cfg.MaxOpenConns, "max-conns", cfg.MaxOpenConns, "Maximum open database connections")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	switch cfg.DatabaseType {
	case "postgres", "sqlite":
	default:
		return Config{}, fmt.Errorf("unsupported database type %q (use postgres or sqlite)", cfg.DatabaseType)
	}

	// lib/pq falls back to PGHOST, PGUSER, ... when the URL is empty
	if cfg.DatabaseURL == "" && !(cfg.DatabaseType == "postgres" && os.Getenv("PGHOST") != "") {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.QueryTimeout <= 0 {
		return Config{}, errors.New("query timeout must be positive")
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SlogLevel converts LogLevel for slog handlers
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
