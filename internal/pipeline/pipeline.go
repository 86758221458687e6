package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clauselens/clauselens/internal/document"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/obligations"
)

// Completer is the gateway seam the pipeline depends on, satisfied by
// llm.Gateway and by test stubs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (raw, provider string, usedFallback bool, err error)
}

// Config carries the limits the pipeline enforces.
type Config struct {
	MaxFileBytes     int64
	MaxContractChars int
}

// Pipeline is the linear request flow: validate upload, extract text,
// validate text, build prompt, call the gateway, parse and sanitize the
// response, aggregate the risk summary. One user action, one run, no state
// kept between runs.
type Pipeline struct {
	loader  *document.Loader
	gateway Completer
	cfg     Config
	log     *slog.Logger
}

func New(loader *document.Loader, gateway Completer, cfg Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{loader: loader, gateway: gateway, cfg: cfg, log: logger}
}

// ProcessUpload runs the full pipeline for an uploaded file.
func (p *Pipeline) ProcessUpload(ctx context.Context, filename string, content []byte) (*llm.ExtractionResult, error) {
	if err := document.ValidateUpload(filename, int64(len(content)), p.cfg.MaxFileBytes); err != nil {
		return nil, err
	}

	extracted, err := p.loader.Load(ctx, filename, content)
	if err != nil {
		return nil, err
	}

	return p.run(ctx, extracted)
}

// ProcessText runs the pipeline for pasted text or a demo contract, skipping
// the loader.
func (p *Pipeline) ProcessText(ctx context.Context, text string) (*llm.ExtractionResult, error) {
	return p.run(ctx, document.ExtractedText{
		Text:      text,
		Method:    document.MethodText,
		Pages:     1,
		SizeBytes: int64(len(text)),
	})
}

func (p *Pipeline) run(ctx context.Context, extracted document.ExtractedText) (*llm.ExtractionResult, error) {
	start := time.Now()

	if err := document.ValidateContractText(extracted.Text); err != nil {
		return nil, err
	}

	prompt := llm.BuildExtractionPrompt(extracted.Text, p.cfg.MaxContractChars)

	raw, provider, usedFallback, err := p.gateway.Complete(ctx, prompt)
	if err != nil {
		p.log.Error("pipeline.llm.failed", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	records, err := llm.ParseObligations(raw, p.log)
	if err != nil {
		p.log.Error("pipeline.parse.failed",
			"provider", provider,
			"error", err,
			"raw_len", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}
	llm.SanitizeObligations(records)

	result := &llm.ExtractionResult{
		ID:            uuid.New(),
		Obligations:   records,
		Provider:      provider,
		UsedFallback:  usedFallback,
		ParserUsed:    extracted.Method,
		Pages:         extracted.Pages,
		ContractChars: len(extracted.Text),
		RiskSummary:   obligations.Summarize(records),
		CreatedAt:     time.Now().UTC(),
	}

	p.log.Info("pipeline.extract.ok",
		"result_id", result.ID.String(),
		"provider", provider,
		"fallback", usedFallback,
		"records", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
