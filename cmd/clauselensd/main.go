package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/clauselens/clauselens/internal/common"
	"github.com/clauselens/clauselens/internal/document"
	"github.com/clauselens/clauselens/internal/export"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/llm/gemini"
	"github.com/clauselens/clauselens/internal/llm/openai"
	"github.com/clauselens/clauselens/internal/pipeline"
	"github.com/clauselens/clauselens/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	primary := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.OpenAIKey,
		Model:       cfg.LLM.OpenAIModel,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	secondary := gemini.NewClient(gemini.Config{
		APIKey:      cfg.LLM.GeminiKey,
		Model:       cfg.LLM.GeminiModel,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	gateway := llm.NewGateway(primary, secondary, logger)
	loader := document.NewLoader(logger)
	pipe := pipeline.New(loader, gateway, pipeline.Config{
		MaxFileBytes:     cfg.Upload.MaxFileBytes,
		MaxContractChars: cfg.Upload.MaxContractChars,
	}, logger)
	exporter := export.NewService(logger)

	svc := server.New(pipe, exporter, cfg.Upload.MaxFileBytes, logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           svc.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}
