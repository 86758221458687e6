// Package obligations holds the presentation-side record operations:
// filtering, sorting, and risk aggregation over parsed obligation lists.
// All operations work on copies; records are never mutated.
package obligations

import (
	"sort"
	"strings"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/llm"
)

// DueDateFilter selects records by the shape of their due date.
type DueDateFilter string

const (
	DueAll     DueDateFilter = "all"
	DueDated   DueDateFilter = "dated"   // anything except "Ongoing"
	DueOngoing DueDateFilter = "ongoing" // exactly "Ongoing"
)

// Sortable fields.
const (
	SortByRisk    = "riskLevel"
	SortByParty   = "responsibleParty"
	SortByDueDate = "dueDate"
)

// Filter narrows an obligation list. Zero-value fields match everything.
type Filter struct {
	RiskLevels []constants.RiskLevel
	Parties    []string
	DueDate    DueDateFilter
}

// Apply returns the records matching the filter, in their original order.
func (f Filter) Apply(records []llm.Obligation) []llm.Obligation {
	out := make([]llm.Obligation, 0, len(records))
	for _, r := range records {
		if !f.matches(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (f Filter) matches(r llm.Obligation) bool {
	if len(f.RiskLevels) > 0 && !containsRisk(f.RiskLevels, r.RiskLevel) {
		return false
	}
	if len(f.Parties) > 0 && !containsFold(f.Parties, r.ResponsibleParty) {
		return false
	}
	switch f.DueDate {
	case DueDated:
		return !strings.EqualFold(r.DueDate, "Ongoing")
	case DueOngoing:
		return strings.EqualFold(r.DueDate, "Ongoing")
	}
	return true
}

// SortBy returns a sorted copy. Unknown fields leave the order untouched.
// Risk sorts High > Medium > Low when descending, which is the natural
// triage order.
func SortBy(records []llm.Obligation, field string, desc bool) []llm.Obligation {
	out := make([]llm.Obligation, len(records))
	copy(out, records)

	var less func(a, b llm.Obligation) bool
	switch field {
	case SortByRisk:
		less = func(a, b llm.Obligation) bool { return riskRank(a.RiskLevel) < riskRank(b.RiskLevel) }
	case SortByParty:
		less = func(a, b llm.Obligation) bool {
			return strings.ToLower(a.ResponsibleParty) < strings.ToLower(b.ResponsibleParty)
		}
	case SortByDueDate:
		// "Ongoing" sorts after concrete dates and timeframes.
		less = func(a, b llm.Obligation) bool { return dueDateKey(a.DueDate) < dueDateKey(b.DueDate) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Summarize computes the per-risk breakdown for a record list.
func Summarize(records []llm.Obligation) llm.RiskSummary {
	counts := map[constants.RiskLevel]int{
		constants.RiskLow:    0,
		constants.RiskMedium: 0,
		constants.RiskHigh:   0,
	}
	for _, r := range records {
		counts[r.RiskLevel]++
	}

	s := llm.RiskSummary{Total: len(records), Counts: counts}
	if s.Total > 0 {
		s.HighPct = float64(counts[constants.RiskHigh]) / float64(s.Total) * 100
		s.MediumPct = float64(counts[constants.RiskMedium]) / float64(s.Total) * 100
		s.LowPct = float64(counts[constants.RiskLow]) / float64(s.Total) * 100
	}
	return s
}

// Parties returns the distinct responsible parties in first-seen order.
func Parties(records []llm.Obligation) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, r := range records {
		if _, ok := seen[r.ResponsibleParty]; ok {
			continue
		}
		seen[r.ResponsibleParty] = struct{}{}
		out = append(out, r.ResponsibleParty)
	}
	return out
}

func riskRank(lvl constants.RiskLevel) int {
	switch lvl {
	case constants.RiskLow:
		return 0
	case constants.RiskMedium:
		return 1
	case constants.RiskHigh:
		return 2
	default:
		return 1
	}
}

func dueDateKey(due string) string {
	if strings.EqualFold(due, "Ongoing") {
		return "\uffff" // after everything else
	}
	return strings.ToLower(due)
}

func containsRisk(list []constants.RiskLevel, lvl constants.RiskLevel) bool {
	for _, l := range list {
		if l == lvl {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
