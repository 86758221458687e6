package llm

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/common"
)

// ParseObligations extracts the obligation array from raw model output.
// Models routinely wrap the JSON in prose or markdown fences, so the parser
// locates the first well-formed JSON array substring and works from there.
//
// Record-level degradation policy: an element with no obligation text is
// dropped (nothing to show the user), every other element is kept with its
// fields coerced to safe values. Order is preserved. Only a missing array
// is a hard PARSE_ERROR.
func ParseObligations(raw string, logger *slog.Logger) ([]Obligation, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cleaned := stripCodeFences(raw)
	arr, elements, ok := locateObligationArray(cleaned)
	if !ok {
		return nil, common.NewParseError("no JSON array found in model output", nil)
	}

	// Schema check is diagnostic only: coercion below is authoritative.
	if err := ValidateJSONAgainstSchema(BuildObligationJSONSchema(), []byte(arr)); err != nil {
		logger.Warn("llm.parse.schema_mismatch", "error", err)
	}

	out := make([]Obligation, 0, len(elements))
	for i, el := range elements {
		text := stringField(el, "obligation")
		if strings.TrimSpace(text) == "" {
			logger.Warn("llm.parse.record_dropped", "index", i, "reason", "missing obligation text")
			continue
		}

		riskRaw := stringField(el, "riskLevel")
		risk, matched := constants.CanonicalizeRisk(riskRaw)
		if !matched {
			logger.Warn("llm.parse.risk_coerced", "index", i, "value", riskRaw, "coerced_to", string(constants.RiskMedium))
		}

		dueDate := strings.TrimSpace(stringField(el, "dueDate"))
		if dueDate == "" {
			dueDate = "Ongoing"
		}

		out = append(out, Obligation{
			Obligation:       text,
			ResponsibleParty: stringField(el, "responsibleParty"),
			DueDate:          dueDate,
			RiskLevel:        risk,
			Summary:          stringField(el, "summary"),
		})
	}

	return out, nil
}

// stripCodeFences removes markdown ```json fences the model may wrap the
// payload in.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// locateObligationArray finds the first balanced JSON array of objects in s.
// The scan is string-literal aware so brackets inside values don't end the
// array early, and bracketed prose ("see clause [2]") is skipped because it
// does not decode as an object array.
func locateObligationArray(s string) (string, []map[string]any, bool) {
	for start := 0; start < len(s); start++ {
		if s[start] != '[' {
			continue
		}
		end, ok := scanBalancedArray(s, start)
		if !ok {
			continue
		}
		candidate := s[start : end+1]
		var elements []map[string]any
		if err := json.Unmarshal([]byte(candidate), &elements); err == nil {
			return candidate, elements, true
		}
	}
	return "", nil, false
}

func scanBalancedArray(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
