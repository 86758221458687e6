package gemini

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Gemini client.
type Config struct {
	APIKey      string        // if empty, falls back to env GEMINI_API_KEY
	BaseURL     string        // default https://generativelanguage.googleapis.com/v1beta
	Model       string        // e.g., "gemini-2.0-flash-exp"
	Temperature float32       // 0..2
	MaxTokens   int           // maxOutputTokens
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash-exp"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
