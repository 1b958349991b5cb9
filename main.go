package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/db"
	"github.com/danielhkuo/idea-board/ideas"
	"github.com/danielhkuo/idea-board/metrics"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/router"
	"github.com/danielhkuo/idea-board/store"
)

func main() {
	var err error

	// Load .env if present; real environment wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, v ...any) {
		slog.Info(fmt.Sprintf(format, v...))
	})); err != nil {
		slog.Warn("failed to set GOMAXPROCS", "error", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Connect to the store
	dbConn, err := db.Open(startCtx, cfg.DatabaseType, cfg.DatabaseURL, cfg.MaxOpenConns)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema; never serve against an unknown one
	if err := db.CreateSchema(startCtx, dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		dbConn.Close()
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(dbConn, "ideas"),
	)

	svc := ideas.NewService(store.New(dbConn, cfg.DatabaseType), cfg.QueryTimeout)
	mux := router.NewRouter(svc, metrics.New(registry))

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(cfg.CORSOrigin, mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		<-drained
		slog.Info("Server closed")
	}
}
