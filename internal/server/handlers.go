package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/common"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/obligations"
)

// handleUpload accepts a multipart upload ("file" part), runs the pipeline,
// stores the result in the caller's session, and returns it.
func (s *Service) handleUpload(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)
	ctx := common.WithSessionID(r.Context(), sessionID)

	// Give multipart framing some headroom beyond the file cap; the
	// validator enforces the real limit on the file bytes themselves.
	r.Body = http.MaxBytesReader(w, r.Body, s.maxFileBytes+1<<20)
	if err := r.ParseMultipartForm(s.maxFileBytes); err != nil {
		writeAppError(w, common.NewValidationError("could not parse multipart form (is the file too large?)"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeAppError(w, common.NewValidationError("file is required"))
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			s.log.Warn("upload file close error", "error", cerr)
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		writeAppError(w, common.NewValidationError("failed to read file"))
		return
	}

	result, err := s.pipeline.ProcessUpload(ctx, header.Filename, content)
	if err != nil {
		s.log.Warn("server.upload.failed", "filename", header.Filename, "error", err)
		writeAppError(w, err)
		return
	}

	s.sessions.Put(sessionID, result)
	writeJSON(w, http.StatusOK, result)
}

type textRequest struct {
	Text string `json:"text"`
	Demo string `json:"demo"`
}

// handleText accepts pasted contract text or a demo contract name.
func (s *Service) handleText(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)
	ctx := common.WithSessionID(r.Context(), sessionID)

	var req textRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeAppError(w, common.NewValidationError("invalid request body"))
		return
	}

	text := req.Text
	if req.Demo != "" {
		demoText, ok := constants.DemoContract(req.Demo)
		if !ok {
			writeAppError(w, common.NewValidationError(fmt.Sprintf("unknown demo contract: %q", req.Demo)))
			return
		}
		text = demoText
	}
	if strings.TrimSpace(text) == "" {
		writeAppError(w, common.NewValidationError("text or demo is required"))
		return
	}

	result, err := s.pipeline.ProcessText(ctx, text)
	if err != nil {
		s.log.Warn("server.text.failed", "demo", req.Demo, "error", err)
		writeAppError(w, err)
		return
	}

	s.sessions.Put(sessionID, result)
	writeJSON(w, http.StatusOK, result)
}

// resultView is the filtered/sorted projection of the session result the
// table renders. The stored result itself is never modified.
type resultView struct {
	*llm.ExtractionResult
	Obligations []llm.Obligation `json:"obligations"`
	Filtered    int              `json:"filtered"`
	Parties     []string         `json:"parties"`
}

// handleResult returns the session's result with optional filtering and
// sorting via query parameters: risk, party, due, sort, order.
func (s *Service) handleResult(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)
	result, ok := s.sessions.Get(sessionID)
	if !ok {
		writeAppError(w, common.NewAppError(common.CodeNotFound, "no extraction result for this session", common.ErrNotFound))
		return
	}

	q := r.URL.Query()
	filter := obligations.Filter{
		RiskLevels: parseRiskLevels(q.Get("risk")),
		Parties:    splitList(q.Get("party")),
		DueDate:    obligations.DueDateFilter(q.Get("due")),
	}

	view := filter.Apply(result.Obligations)
	if field := q.Get("sort"); field != "" {
		view = obligations.SortBy(view, field, q.Get("order") == "desc")
	}

	writeJSON(w, http.StatusOK, resultView{
		ExtractionResult: result,
		Obligations:      view,
		Filtered:         len(view),
		Parties:          obligations.Parties(result.Obligations),
	})
}

// handleExport streams the session's result as csv, report, or xlsx.
func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)
	result, ok := s.sessions.Get(sessionID)
	if !ok {
		writeAppError(w, common.NewAppError(common.CodeNotFound, "no extraction result for this session", common.ErrNotFound))
		return
	}

	switch chi.URLParam(r, "format") {
	case "csv":
		data, err := s.export.CSV(result)
		if err != nil {
			writeAppError(w, err)
			return
		}
		sendAttachment(w, data, "contract_obligations.csv", "text/csv")
	case "report":
		sendAttachment(w, s.export.SummaryReport(result), "obligations_summary.txt", "text/plain; charset=utf-8")
	case "xlsx":
		data, err := s.export.XLSX(result)
		if err != nil {
			writeAppError(w, err)
			return
		}
		sendAttachment(w, data, "contract_obligations.xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	default:
		writeAppError(w, common.NewValidationError("unknown export format (csv, report, xlsx)"))
	}
}

// handleClear discards the session's result.
func (s *Service) handleClear(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)
	s.sessions.Delete(sessionID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func sendAttachment(w http.ResponseWriter, data []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func parseRiskLevels(raw string) []constants.RiskLevel {
	var out []constants.RiskLevel
	for _, part := range splitList(raw) {
		if lvl, ok := constants.CanonicalizeRisk(part); ok {
			out = append(out, lvl)
		}
	}
	return out
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
