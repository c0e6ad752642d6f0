// Command orfscan-server provides a REST API for ORF discovery and protein
// matching.
//
// Usage:
//
//	orfscan-server [options]
//
// Options:
//
//	-config   Settings file (default: ./orfscan.yaml when present)
//	-port     Port to listen on (overrides ORFSCAN_SERVER_PORT)
//	-host     Host to bind to (overrides ORFSCAN_SERVER_HOST)
//	-env      .env file loaded before reading the environment (default: .env)
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aria-lang/orfscan-go/api/handlers"
	"github.com/aria-lang/orfscan-go/api/middleware"
	"github.com/aria-lang/orfscan-go/internal/batch"
	"github.com/aria-lang/orfscan-go/internal/cache"
	"github.com/aria-lang/orfscan-go/internal/config"
	"github.com/aria-lang/orfscan-go/internal/logging"
	"github.com/aria-lang/orfscan-go/pkg/orfscan"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	configFile := flag.String("config", "", "Settings file")
	port := flag.Int("port", 0, "Port to listen on")
	host := flag.String("host", "", "Host to bind to")
	envFile := flag.String("env", ".env", ".env file to load")
	flag.Parse()

	boot := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		boot.Error("could not load env file", "file", *envFile, "err", err)
		os.Exit(1)
	}

	v := viper.New()
	if *port != 0 {
		v.Set("server.port", *port)
	}
	if *host != "" {
		v.Set("server.host", *host)
	}
	cfg, err := config.Load(v, *configFile)
	if err != nil {
		boot.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		boot.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobs := cache.New[*batch.Report](cfg.Cache.Capacity, cfg.Cache.TTL)
	go jobs.Run(ctx, cfg.Cache.SweepInterval)

	orch, err := batch.New(cfg, batch.WithLogger(log), batch.WithStore(jobs))
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      newRouter(handlers.New(orch, jobs, log), log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		log.Info("server is shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("could not gracefully shutdown", "err", err)
		}
		close(done)
	}()

	log.Info("orfscan API server starting",
		"addr", "http://"+cfg.Addr(), "version", orfscan.Version(),
		"workers", cfg.Workers, "threshold", cfg.Threshold, "direction", cfg.Direction)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("could not listen", "addr", cfg.Addr(), "err", err)
		os.Exit(1)
	}

	<-done
	log.Info("server stopped")
}

func newRouter(api *handlers.API, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", api.Register)

	return r
}
