package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/obligations"
)

func sampleResult() *llm.ExtractionResult {
	records := []llm.Obligation{
		{
			Obligation:       "Provider shall deliver monthly reports",
			ResponsibleParty: "Provider",
			DueDate:          "2024-02-05",
			RiskLevel:        constants.RiskMedium,
			Summary:          "Monthly reporting duty.",
		},
		{
			Obligation:       `Client shall pay, "net 30"`,
			ResponsibleParty: "Client",
			DueDate:          "Ongoing",
			RiskLevel:        constants.RiskHigh,
			Summary:          "Payment deadline.",
		},
	}
	return &llm.ExtractionResult{
		ID:          uuid.New(),
		Obligations: records,
		Provider:    "OpenAI gpt-4",
		RiskSummary: obligations.Summarize(records),
		CreatedAt:   time.Now().UTC(),
	}
}

func TestCSV(t *testing.T) {
	svc := NewService(nil)

	out, err := svc.CSV(sampleResult())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Obligation", "Responsible Party", "Due Date", "Risk Level", "Summary"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Provider shall deliver monthly reports", rows[1][1])
	assert.Equal(t, "Medium", rows[1][4])
	// Embedded commas and quotes survive the round trip.
	assert.Equal(t, `Client shall pay, "net 30"`, rows[2][1])
}

func TestCSV_Empty(t *testing.T) {
	svc := NewService(nil)
	result := sampleResult()
	result.Obligations = nil
	result.RiskSummary = obligations.Summarize(nil)

	out, err := svc.CSV(result)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestSummaryReport(t *testing.T) {
	svc := NewService(nil)
	svc.now = func() time.Time { return time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC) }

	report := string(svc.SummaryReport(sampleResult()))

	assert.Contains(t, report, "CONTRACT OBLIGATIONS SUMMARY")
	assert.Contains(t, report, "Generated on: 2024-02-05 12:00:00")
	assert.Contains(t, report, "Total Obligations: 2")
	assert.Contains(t, report, "- High: 1 (50.0%)")
	assert.Contains(t, report, "- Medium: 1 (50.0%)")
	assert.Contains(t, report, "- Low: 0 (0.0%)")
	assert.Contains(t, report, "- Provider: 1 obligations")
	assert.Contains(t, report, "ID: 1")
	assert.Contains(t, report, "Obligation: Provider shall deliver monthly reports")

	// High before Medium before Low in the breakdown.
	high := bytes.Index([]byte(report), []byte("- High:"))
	medium := bytes.Index([]byte(report), []byte("- Medium:"))
	low := bytes.Index([]byte(report), []byte("- Low:"))
	assert.Less(t, high, medium)
	assert.Less(t, medium, low)
}

func TestXLSX(t *testing.T) {
	svc := NewService(nil)

	out, err := svc.XLSX(sampleResult())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Obligations")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Obligation", rows[0][1])
	assert.Equal(t, "Provider shall deliver monthly reports", rows[1][1])
	assert.Equal(t, "High", rows[2][4])
}
