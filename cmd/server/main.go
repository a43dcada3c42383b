package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/manualdesk/nexon-assist/internal/api"
	"github.com/manualdesk/nexon-assist/internal/assistant"
	"github.com/manualdesk/nexon-assist/internal/config"
	"github.com/manualdesk/nexon-assist/internal/db"
	"github.com/manualdesk/nexon-assist/internal/store"
	"github.com/manualdesk/nexon-assist/internal/watch"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	// Upload registry is best-effort: the relay works without it.
	registry, err := db.New(cfg.DBPath)
	if err != nil {
		logger.Warn("failed to open upload registry, continuing without it",
			zap.Error(err),
			zap.String("dbPath", cfg.DBPath))
		registry = nil
	} else {
		defer registry.Close()
	}

	fileStore := store.New(cfg.UploadDir)

	// Select the assistant client once at startup. A missing credential
	// leaves the process degraded rather than crashing: health reports it
	// and assistant-dependent routes return 503.
	var client assistant.Client
	if cfg.UseMock {
		client = assistant.NewMock(logger)
	} else {
		real, err := assistant.NewPinecone(cfg.APIKey, cfg.AssistantHost, cfg.AssistantName, cfg.Model, logger)
		if err != nil {
			logger.Error("failed to initialize assistant, running degraded", zap.Error(err))
		} else {
			client = real
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.WatchUploads && client != nil {
		watcher, err := watch.New(client, registry, logger, nil)
		if err != nil {
			logger.Error("failed to start uploads watcher", zap.Error(err))
		} else {
			defer watcher.Stop()
			go func() {
				if err := watcher.Run(ctx, cfg.UploadDir); err != nil && ctx.Err() == nil {
					logger.Error("uploads watcher stopped", zap.Error(err))
				}
			}()
		}
	}

	handler := api.NewHandler(client, fileStore, registry, logger)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/", http.FileServer(http.Dir("web")))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.WithRequestLogging(logger, mux),
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		server.Shutdown(context.Background())
	}()

	logger.Info("starting server", zap.String("port", cfg.Port), zap.Bool("mock", cfg.UseMock))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
