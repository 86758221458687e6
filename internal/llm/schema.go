package llm

import (
	"github.com/clauselens/clauselens/constants"
)

// BuildObligationJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the obligation array as a generic map. Used locally for diagnostics on the
// raw model output before the lenient per-field coercion runs.
func BuildObligationJSONSchema() map[string]any {
	item := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"obligation":       map[string]any{"type": "string", "minLength": 1},
			"responsibleParty": map[string]any{"type": "string"},
			"dueDate":          map[string]any{"type": "string"},
			"riskLevel": map[string]any{
				"type": "string",
				"enum": constants.RiskLevelsAsStringSlice(),
			},
			"summary": map[string]any{"type": "string"},
		},
		"required": []string{
			"obligation",
			"responsibleParty",
			"dueDate",
			"riskLevel",
			"summary",
		},
	}

	return map[string]any{
		"type":  "array",
		"items": item,
	}
}
