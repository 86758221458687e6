// runextract runs the extraction pipeline once against a local file or a
// named demo contract and prints the result. Useful for poking at prompts
// and providers without the HTTP layer.
//
//	runextract -file contract.pdf -format csv
//	runextract -demo "Service Agreement" -format report
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/common"
	"github.com/clauselens/clauselens/internal/document"
	"github.com/clauselens/clauselens/internal/export"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/llm/gemini"
	"github.com/clauselens/clauselens/internal/llm/openai"
	"github.com/clauselens/clauselens/internal/pipeline"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to a pdf or txt contract")
		demoName = flag.String("demo", "", "name of a built-in demo contract")
		format   = flag.String("format", "report", "output format: csv or report")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if (*filePath == "") == (*demoName == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -file or -demo is required")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

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

	pipe := pipeline.New(
		document.NewLoader(logger),
		llm.NewGateway(primary, secondary, logger),
		pipeline.Config{
			MaxFileBytes:     cfg.Upload.MaxFileBytes,
			MaxContractChars: cfg.Upload.MaxContractChars,
		},
		logger,
	)

	var (
		result *llm.ExtractionResult
		err    error
	)
	if *filePath != "" {
		var content []byte
		content, err = os.ReadFile(*filePath)
		if err != nil {
			logger.Error("read file", "path", *filePath, "error", err)
			os.Exit(1)
		}
		result, err = pipe.ProcessUpload(ctx, filepath.Base(*filePath), content)
	} else {
		text, ok := constants.DemoContract(*demoName)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown demo contract %q; available: %v\n",
				*demoName, constants.DemoContractNames())
			os.Exit(2)
		}
		result, err = pipe.ProcessText(ctx, text)
	}
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	exporter := export.NewService(logger)
	switch *format {
	case "csv":
		data, csvErr := exporter.CSV(result)
		if csvErr != nil {
			logger.Error("csv export", "error", csvErr)
			os.Exit(1)
		}
		_, _ = os.Stdout.Write(data)
	case "report":
		_, _ = os.Stdout.Write(exporter.SummaryReport(result))
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (csv, report)\n", *format)
		os.Exit(2)
	}
}
