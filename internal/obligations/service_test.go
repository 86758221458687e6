package obligations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/llm"
)

func sampleRecords() []llm.Obligation {
	return []llm.Obligation{
		{Obligation: "Deliver reports", ResponsibleParty: "Provider", DueDate: "2024-02-05", RiskLevel: constants.RiskMedium},
		{Obligation: "Pay invoices", ResponsibleParty: "Client", DueDate: "Within 30 days", RiskLevel: constants.RiskHigh},
		{Obligation: "Keep confidentiality", ResponsibleParty: "Both parties", DueDate: "Ongoing", RiskLevel: constants.RiskLow},
		{Obligation: "Carry insurance", ResponsibleParty: "Provider", DueDate: "Ongoing", RiskLevel: constants.RiskHigh},
	}
}

func TestFilter_Apply(t *testing.T) {
	records := sampleRecords()

	t.Run("zero filter matches everything", func(t *testing.T) {
		assert.Len(t, Filter{}.Apply(records), 4)
	})

	t.Run("by risk level", func(t *testing.T) {
		out := Filter{RiskLevels: []constants.RiskLevel{constants.RiskHigh}}.Apply(records)
		require.Len(t, out, 2)
		assert.Equal(t, "Pay invoices", out[0].Obligation)
		assert.Equal(t, "Carry insurance", out[1].Obligation)
	})

	t.Run("by party case-insensitive", func(t *testing.T) {
		out := Filter{Parties: []string{"provider"}}.Apply(records)
		require.Len(t, out, 2)
		assert.Equal(t, "Provider", out[0].ResponsibleParty)
	})

	t.Run("by due date shape", func(t *testing.T) {
		assert.Len(t, Filter{DueDate: DueOngoing}.Apply(records), 2)
		assert.Len(t, Filter{DueDate: DueDated}.Apply(records), 2)
		assert.Len(t, Filter{DueDate: DueAll}.Apply(records), 4)
	})

	t.Run("combined filters intersect", func(t *testing.T) {
		out := Filter{
			RiskLevels: []constants.RiskLevel{constants.RiskHigh},
			DueDate:    DueOngoing,
		}.Apply(records)
		require.Len(t, out, 1)
		assert.Equal(t, "Carry insurance", out[0].Obligation)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := sampleRecords()
		Filter{RiskLevels: []constants.RiskLevel{constants.RiskLow}}.Apply(before)
		assert.Equal(t, sampleRecords(), before)
	})
}

func TestSortBy(t *testing.T) {
	records := sampleRecords()

	t.Run("risk descending puts High first", func(t *testing.T) {
		out := SortBy(records, SortByRisk, true)
		require.Len(t, out, 4)
		assert.Equal(t, constants.RiskHigh, out[0].RiskLevel)
		assert.Equal(t, constants.RiskHigh, out[1].RiskLevel)
		assert.Equal(t, constants.RiskLow, out[3].RiskLevel)
	})

	t.Run("risk sort is stable", func(t *testing.T) {
		out := SortBy(records, SortByRisk, true)
		assert.Equal(t, "Pay invoices", out[0].Obligation)
		assert.Equal(t, "Carry insurance", out[1].Obligation)
	})

	t.Run("due date puts Ongoing last", func(t *testing.T) {
		out := SortBy(records, SortByDueDate, false)
		assert.Equal(t, "Ongoing", out[2].DueDate)
		assert.Equal(t, "Ongoing", out[3].DueDate)
	})

	t.Run("party sorts alphabetically ignoring case", func(t *testing.T) {
		out := SortBy(records, SortByParty, false)
		assert.Equal(t, "Both parties", out[0].ResponsibleParty)
		assert.Equal(t, "Client", out[1].ResponsibleParty)
	})

	t.Run("unknown field keeps original order", func(t *testing.T) {
		out := SortBy(records, "nonsense", true)
		assert.Equal(t, records, out)
	})

	t.Run("returns a copy", func(t *testing.T) {
		out := SortBy(records, SortByRisk, true)
		out[0].Obligation = "mutated"
		assert.Equal(t, "Deliver reports", records[0].Obligation)
	})
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Counts[constants.RiskHigh])
	assert.Equal(t, 1, s.Counts[constants.RiskMedium])
	assert.Equal(t, 1, s.Counts[constants.RiskLow])
	assert.InDelta(t, 50.0, s.HighPct, 0.01)
	assert.InDelta(t, 25.0, s.MediumPct, 0.01)
	assert.InDelta(t, 25.0, s.LowPct, 0.01)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Total)
	assert.Zero(t, s.HighPct)
	assert.Zero(t, s.MediumPct)
	assert.Zero(t, s.LowPct)
}

func TestParties(t *testing.T) {
	parties := Parties(sampleRecords())
	assert.Equal(t, []string{"Provider", "Client", "Both parties"}, parties)
}
