package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pvanrooyen/quotecomp/internal/api"
	"github.com/pvanrooyen/quotecomp/internal/catalog"
	"github.com/pvanrooyen/quotecomp/internal/config"
	"github.com/pvanrooyen/quotecomp/internal/quote"
	"github.com/pvanrooyen/quotecomp/internal/textract"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Error("invalid catalog overrides", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		cat = loaded
	}

	var remote *textract.RemoteClient
	if cfg.RemoteEnabled() {
		remote = textract.NewRemoteClient(cfg.RemoteURL, cfg.RemoteAPIKey, cfg.RemoteModes, cfg.RemoteModeTimeout)
	}
	pipeline := textract.NewPipeline(remote, log)

	processor := quote.NewProcessor(pipeline, cat, cfg.WorkerCount, log)

	srv := api.NewServer(processor, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting quotecomp", "port", cfg.Port, "remote_extractor", cfg.RemoteEnabled())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
