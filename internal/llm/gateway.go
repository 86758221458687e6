package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clauselens/clauselens/internal/common"
)

// Gateway sends a prompt to the primary provider and falls back to the
// secondary exactly once. No retries beyond that, no response caching.
type Gateway struct {
	primary   Provider
	secondary Provider
	log       *slog.Logger
}

func NewGateway(primary, secondary Provider, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{primary: primary, secondary: secondary, log: logger}
}

// Complete returns the raw model output, the name of the provider that
// answered, and whether the fallback produced it. An unconfigured provider
// (no API key) is skipped as if it had failed. When both providers fail the
// error is LLM_UNAVAILABLE wrapping the last error from each attempt.
func (g *Gateway) Complete(ctx context.Context, prompt string) (raw, provider string, usedFallback bool, err error) {
	start := time.Now()
	var attemptErrs []error

	for i, p := range []Provider{g.primary, g.secondary} {
		if p == nil {
			continue
		}
		isFallback := i == 1

		if !p.Configured() {
			g.log.Warn("llm.gateway.skipped", "provider", p.Name(), "reason", "no api key")
			attemptErrs = append(attemptErrs, fmt.Errorf("%s: not configured", p.Name()))
			continue
		}

		out, cErr := p.Complete(ctx, prompt)
		if cErr != nil {
			g.log.Warn("llm.gateway.provider_failed",
				"provider", p.Name(),
				"fallback", isFallback,
				"error", cErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			attemptErrs = append(attemptErrs, fmt.Errorf("%s: %w", p.Name(), cErr))
			continue
		}

		g.log.Info("llm.gateway.ok",
			"provider", p.Name(),
			"fallback", isFallback,
			"raw_len", len(out),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return out, p.Name(), isFallback, nil
	}

	return "", "", false, common.NewLLMUnavailableError(errors.Join(attemptErrs...))
}
