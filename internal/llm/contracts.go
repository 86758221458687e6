package llm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clauselens/clauselens/constants"
)

// Obligation is the normalized shape we want from the LLM, one element of
// the returned JSON array.
type Obligation struct {
	Obligation       string              `json:"obligation"`
	ResponsibleParty string              `json:"responsibleParty"`
	DueDate          string              `json:"dueDate"` // YYYY-MM-DD, timeframe, or "Ongoing"
	RiskLevel        constants.RiskLevel `json:"riskLevel"`
	Summary          string              `json:"summary"`
}

// RiskSummary aggregates obligations by risk level.
type RiskSummary struct {
	Total     int                         `json:"total"`
	Counts    map[constants.RiskLevel]int `json:"counts"`
	HighPct   float64                     `json:"highPct"`
	MediumPct float64                     `json:"mediumPct"`
	LowPct    float64                     `json:"lowPct"`
}

// ExtractionResult is everything the presentation layer consumes for one
// document: the ordered records plus provenance. Never persisted.
type ExtractionResult struct {
	ID            uuid.UUID    `json:"id"`
	Obligations   []Obligation `json:"obligations"`
	Provider      string       `json:"provider"`
	UsedFallback  bool         `json:"usedFallback"`
	ParserUsed    string       `json:"parserUsed,omitempty"`
	Pages         int          `json:"pages,omitempty"`
	ContractChars int          `json:"contractChars"`
	RiskSummary   RiskSummary  `json:"riskSummary"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// Provider is a single hosted model endpoint the gateway can call.
type Provider interface {
	Name() string
	// Configured reports whether the provider has credentials and can be
	// attempted at all.
	Configured() bool
	Complete(ctx context.Context, prompt string) (string, error)
}
