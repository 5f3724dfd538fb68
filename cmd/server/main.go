/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the EPF statement engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load environment configuration (.env supported)
  3. Initialize logger and run store
  4. Create API handler with dependencies
  5. Configure HTTP router
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -addr    Listen address; overrides SERVER_ADDR (default: :8080)
  -env     Path to a dotenv file (default: ./.env when present)

ENVIRONMENT:
  SERVER_ADDR        Listen address                    (default :8080)
  LOG_LEVEL          debug|info|warn|error             (default info)
  CORS_ORIGINS       Comma-separated allowed origins   (default *)
  MAX_UPLOAD_MB      Upload size cap in megabytes      (default 10)
  RUN_TTL_MINUTES    Minutes a computed run is kept    (default 60)
  RUN_SWEEP_MINUTES  Janitor interval for expired runs (default 10)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit; stored runs are gone by design

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/memory/memory.go: Run store
*/
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/warp/epf-engine/api"
	"github.com/warp/epf-engine/config"
	"github.com/warp/epf-engine/logger"
	"github.com/warp/epf-engine/store/memory"
)

func main() {
	// Flags
	addr := flag.String("addr", "", "listen address (overrides SERVER_ADDR)")
	envFile := flag.String("env", "", "path to a dotenv file")
	flag.Parse()

	// Configuration and logging
	if *envFile != "" {
		config.Load(*envFile)
	} else {
		config.Load()
	}
	logger.Init(config.Cfg.LogLevel)
	if *addr != "" {
		config.Cfg.ServerAddr = *addr
	}

	// Initialize run store
	runs := memory.NewRunStore(config.Cfg.RunTTL, config.Cfg.RunSweepInterval)

	// Initialize handler
	handler := api.NewHandler(runs, config.Cfg.MaxUploadSizeBytes)

	// Create router
	router := api.NewRouter(handler, strings.Split(config.Cfg.CORSOrigins, ","))

	// Create server
	server := &http.Server{
		Addr:         config.Cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.L.Info("Server starting", "addr", config.Cfg.ServerAddr, "runTTL", config.Cfg.RunTTL.String())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.L.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.L.Info("Server stopped")
}
