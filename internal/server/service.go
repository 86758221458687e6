package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/common"
	"github.com/clauselens/clauselens/internal/export"
	"github.com/clauselens/clauselens/internal/pipeline"
)

// Service wires the pipeline and export layer behind the HTTP API.
type Service struct {
	pipeline     *pipeline.Pipeline
	export       *export.Service
	sessions     *SessionStore
	maxFileBytes int64
	log          *slog.Logger
}

func New(p *pipeline.Pipeline, exp *export.Service, maxFileBytes int64, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		pipeline:     p,
		export:       exp,
		sessions:     NewSessionStore(),
		maxFileBytes: maxFileBytes,
		log:          logger,
	}
}

// Routes builds the chi router for the service.
func (s *Service) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/demos", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"demos": constants.DemoContractNames()})
	})

	r.Post("/api/contracts", s.handleUpload)
	r.Post("/api/contracts/text", s.handleText)

	r.Get("/api/result", s.handleResult)
	r.Get("/api/result/export/{format}", s.handleExport)
	r.Delete("/api/result", s.handleClear)

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeAppError maps pipeline errors onto the HTTP taxonomy and shapes the
// user-facing message. Parse and LLM failures are retryable from the
// client's point of view.
func writeAppError(w http.ResponseWriter, err error) {
	code := common.ErrorCode(err)
	status := common.HTTPStatus(err)
	payload := map[string]any{
		"error": err.Error(),
		"code":  code,
	}
	if code == common.CodeParse || code == common.CodeLLMUnavailable {
		payload["retryable"] = true
	}
	writeJSON(w, status, payload)
}
