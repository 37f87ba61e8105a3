package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newslens/newslens/app/analysis"
	"github.com/newslens/newslens/app/api"
	"github.com/newslens/newslens/app/cfg"
	"github.com/newslens/newslens/app/database"
	"github.com/newslens/newslens/app/feed"
	"github.com/newslens/newslens/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting NewsLens server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "migration_version", version, "dirty", dirty)

	sources := feed.NewSources(appCfg.SourcesFile)
	if err := sources.Run(); err != nil {
		slog.Error("Failed to load news sources", "file", appCfg.SourcesFile, "error", err)
		os.Exit(1)
	}
	slog.Info("News sources loaded", "file", appCfg.SourcesFile, "count", sources.Count())

	itemRepo := database.NewItemRepository(db)
	fetcher := feed.NewFetcher(sources, appCfg.UserAgent)
	newsService := feed.NewService(fetcher, sources, itemRepo,
		time.Duration(appCfg.CacheTTL)*time.Second)

	extractorTimeout := time.Duration(sources.Settings().Timeout) * time.Second
	extractor := feed.NewContentExtractor(appCfg.UserAgent, extractorTimeout)

	var client analysis.Client
	if appCfg.IsAnalysisConfigured() {
		client = analysis.NewOpenAIClient(appCfg.OpenAIAPIKey, appCfg.OpenAIModel, appCfg.OpenAIBaseURL)
		slog.Info("Analysis provider configured", "model", appCfg.OpenAIModel)
	} else {
		slog.Warn("Analysis API key not set, analysis endpoints will return errors")
	}
	analysisService := analysis.NewService(client, extractor)

	scheduler := tasks.NewScheduler(newsService,
		time.Duration(appCfg.SchedulerInterval)*time.Second, appCfg.WorkerCount)
	scheduler.Start()
	defer scheduler.Stop()

	handler := api.NewHandler(newsService, analysisService, sources, itemRepo)
	router := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Shutdown complete")
}
