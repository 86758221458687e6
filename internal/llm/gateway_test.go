package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauselens/clauselens/internal/common"
)

type stubProvider struct {
	name       string
	configured bool
	out        string
	err        error
	calls      int
}

func (s *stubProvider) Name() string     { return s.name }
func (s *stubProvider) Configured() bool { return s.configured }

func (s *stubProvider) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestGateway_PrimarySucceeds(t *testing.T) {
	primary := &stubProvider{name: "OpenAI gpt-4", configured: true, out: "[]"}
	secondary := &stubProvider{name: "Gemini", configured: true, out: "never"}
	gw := NewGateway(primary, secondary, nil)

	raw, provider, usedFallback, err := gw.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
	assert.Equal(t, "OpenAI gpt-4", provider)
	assert.False(t, usedFallback)
	assert.Zero(t, secondary.calls, "fallback must not be called when primary answers")
}

func TestGateway_FallsBackOnPrimaryError(t *testing.T) {
	primary := &stubProvider{name: "OpenAI gpt-4", configured: true, err: errors.New("timeout")}
	secondary := &stubProvider{name: "Gemini gemini-2.0-flash-exp", configured: true, out: "[]"}
	gw := NewGateway(primary, secondary, nil)

	raw, provider, usedFallback, err := gw.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
	assert.Equal(t, "Gemini gemini-2.0-flash-exp", provider)
	assert.True(t, usedFallback)
	assert.Equal(t, 1, primary.calls)
}

func TestGateway_SkipsUnconfiguredPrimary(t *testing.T) {
	primary := &stubProvider{name: "OpenAI gpt-4", configured: false}
	secondary := &stubProvider{name: "Gemini", configured: true, out: "[]"}
	gw := NewGateway(primary, secondary, nil)

	_, provider, usedFallback, err := gw.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Gemini", provider)
	assert.True(t, usedFallback)
	assert.Zero(t, primary.calls, "unconfigured provider must not be invoked")
}

func TestGateway_BothFail(t *testing.T) {
	primary := &stubProvider{name: "OpenAI gpt-4", configured: true, err: errors.New("rate limited")}
	secondary := &stubProvider{name: "Gemini", configured: true, err: errors.New("server error")}
	gw := NewGateway(primary, secondary, nil)

	_, _, _, err := gw.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, common.CodeLLMUnavailable, common.ErrorCode(err))
	assert.Contains(t, err.Error(), "rate limited")
	assert.Contains(t, err.Error(), "server error")
}

func TestGateway_NothingConfigured(t *testing.T) {
	gw := NewGateway(
		&stubProvider{name: "OpenAI gpt-4"},
		&stubProvider{name: "Gemini"},
		nil,
	)

	_, _, _, err := gw.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, common.CodeLLMUnavailable, common.ErrorCode(err))
}
