package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasktracker/config"
	_ "tasktracker/docs" // Swagger docs
	"tasktracker/internal/extract"
	"tasktracker/internal/httpserver"
	"tasktracker/internal/middleware"
	"tasktracker/internal/rank"
	"tasktracker/internal/task/repository"
	fileRepo "tasktracker/internal/task/repository/file"
	"tasktracker/internal/task/usecase"
	"tasktracker/internal/transcribe"
	"tasktracker/pkg/llmprovider"
	"tasktracker/pkg/log"
	"tasktracker/pkg/whisper"
)

// @title       TaskTracker API
// @description AI-powered task tracking: manual entry, free-text extraction, audio/video transcription, and LLM-based ranking with deterministic fallbacks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskTracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task file: %s", cfg.Storage.TaskFile)

	// 3. Task store
	repo, err := fileRepo.Open(cfg.Storage.TaskFile, logger)
	if err != nil {
		if !errors.Is(err, repository.ErrCorruptState) {
			logger.Error(ctx, "Failed to open task store: ", err)
			return
		}
		// Corrupt file: start with an empty set, the file is rewritten
		// on the next save.
		logger.Warnf(ctx, "Task file unreadable, starting empty: %v", err)
	}

	// 4. LLM engines (optional: the service runs heuristic-only without them)
	var llmExtractor extract.Extractor
	var llmRanker rank.Ranker

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM providers available, using heuristic fallbacks only: %v", err)
	} else {
		manager := llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
			MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
			CacheSize:       cfg.LLM.CacheSize,
			CacheTTL:        parseDuration(cfg.LLM.CacheTTL, 10*time.Minute),
		}, logger)

		llmExtractor = extract.NewLLMExtractor(manager, logger)
		llmRanker = rank.NewLLMRanker(manager, logger)
		logger.Infof(ctx, "LLM engines initialized with %d provider(s)", len(providers))
	}

	// 5. Speech-to-text pipeline
	whisperClient, err := whisper.New(whisper.Config{
		BaseURL: cfg.Transcriber.WhisperURL,
		Timeout: parseDuration(cfg.Transcriber.Timeout, 5*time.Minute),
	})
	if err != nil {
		logger.Error(ctx, "Failed to create whisper client: ", err)
		return
	}
	transcriber := transcribe.New(logger, whisperClient, cfg.Transcriber.FFmpegPath)

	// 6. Task UseCase
	taskUC := usecase.New(
		logger,
		repo,
		llmExtractor,
		llmRanker,
		extract.NewHeuristicExtractor(),
		rank.NewHeuristicRanker(),
		transcriber,
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskUseCase: taskUC,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.HTTPServer.RateLimitRPS,
			Burst:             cfg.HTTPServer.RateLimitBurst,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration parses s, falling back to def on empty or malformed input.
func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
