package constants

import (
	"strings"
)

// RiskLevel is the canonical risk classification for an obligation.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

var allRiskLevels = []RiskLevel{
	RiskLow,
	RiskMedium,
	RiskHigh,
}

func RiskLevelsAsStringSlice() []string {
	result := make([]string, len(allRiskLevels))
	for i, lvl := range allRiskLevels {
		result[i] = string(lvl)
	}
	return result
}

// CanonicalizeRisk maps a model-produced risk string onto one of the three
// canonical levels. The second return is false when the input did not match
// and the conservative default (Medium) was applied.
func CanonicalizeRisk(input string) (RiskLevel, bool) {
	if input == "" {
		return RiskMedium, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]RiskLevel{
		"critical":    RiskHigh,
		"severe":      RiskHigh,
		"major":       RiskHigh,
		"significant": RiskHigh,
		"moderate":    RiskMedium,
		"minor":       RiskLow,
		"trivial":     RiskLow,
		"minimal":     RiskLow,
	}

	if lvl, ok := synonyms[normalized]; ok {
		return lvl, true
	}

	// check if it matches any canonical level string
	for _, lvl := range allRiskLevels {
		if normalized == strings.ToLower(string(lvl)) {
			return lvl, true
		}
	}

	return RiskMedium, false
}
