package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"adhesions-backend/internal/logger"
	"adhesions-backend/internal/server"
)

func main() {
	// Best-effort .env load for local development; real deployments set
	// the environment directly.
	_ = godotenv.Load()

	cfg, err := server.LoadConfig()
	if err != nil {
		// Logger is not up yet.
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		os.Stderr.WriteString("starting logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := server.OpenDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalw("database connect failed",
			"host", cfg.DatabaseHost, "db", cfg.DatabaseName, "err", err)
	}
	defer func() { _ = db.Close() }()

	store := server.NewStore(db)

	// Startup failures are uniformly fatal: a process that cannot ensure
	// its schema does not get to start degraded.
	schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = store.EnsureSchema(schemaCtx)
	cancel()
	if err != nil {
		log.Fatalw("ensuring adhesions table failed", "err", err)
	}
	log.Infow("adhesions table ready")

	srv := server.New(cfg, log, store)

	// Start the HTTP server in a background goroutine so we can listen
	// for OS signals while it runs.
	errCh := make(chan error, 1)
	go func() {
		log.Infow("server starting", "addr", cfg.Addr(), "env", cfg.Env)
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Infow("shutting down", "signal", sig.String())
		// Give in-flight requests 5 seconds to drain.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalw("shutdown failed", "err", err)
		}
		log.Infow("shutdown complete")
	case err := <-errCh:
		if err != nil {
			log.Fatalw("server error", "err", err)
		}
	}
}
