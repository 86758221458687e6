package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/obligations"
)

// Column order is the stable export contract; downstream consumers key on it.
var columns = []string{
	"ID",
	"Obligation",
	"Responsible Party",
	"Due Date",
	"Risk Level",
	"Summary",
}

// Service renders an ExtractionResult into the download formats.
type Service struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, now: time.Now}
}

// CSV renders one row per obligation with the fixed column order.
func (s *Service) CSV(result *llm.ExtractionResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for i, o := range result.Obligations {
		row := []string{
			strconv.Itoa(i + 1),
			o.Obligation,
			o.ResponsibleParty,
			o.DueDate,
			string(o.RiskLevel),
			o.Summary,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok", "result_id", result.ID.String(), "rows", len(result.Obligations))
	return buf.Bytes(), nil
}

// SummaryReport renders the plain-text report: header, risk breakdown,
// party breakdown, then every record in full.
func (s *Service) SummaryReport(result *llm.ExtractionResult) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "CONTRACT OBLIGATIONS SUMMARY\n")
	fmt.Fprintf(&b, "Generated on: %s\n", s.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total Obligations: %d\n\n", len(result.Obligations))

	summary := result.RiskSummary
	b.WriteString("RISK BREAKDOWN:\n")
	for _, lvl := range []constants.RiskLevel{constants.RiskHigh, constants.RiskMedium, constants.RiskLow} {
		count := summary.Counts[lvl]
		pct := 0.0
		if summary.Total > 0 {
			pct = float64(count) / float64(summary.Total) * 100
		}
		fmt.Fprintf(&b, "- %s: %d (%.1f%%)\n", lvl, count, pct)
	}

	b.WriteString("\nPARTY BREAKDOWN:\n")
	for _, party := range obligations.Parties(result.Obligations) {
		n := 0
		for _, o := range result.Obligations {
			if o.ResponsibleParty == party {
				n++
			}
		}
		fmt.Fprintf(&b, "- %s: %d obligations\n", party, n)
	}

	b.WriteString("\nDETAILED OBLIGATIONS:\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	for i, o := range result.Obligations {
		fmt.Fprintf(&b, "\nID: %d\n", i+1)
		fmt.Fprintf(&b, "Risk Level: %s\n", o.RiskLevel)
		fmt.Fprintf(&b, "Responsible Party: %s\n", o.ResponsibleParty)
		fmt.Fprintf(&b, "Due Date: %s\n", o.DueDate)
		fmt.Fprintf(&b, "Obligation: %s\n", o.Obligation)
		fmt.Fprintf(&b, "Summary: %s\n", o.Summary)
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}

	s.logger.Info("export.report.ok", "result_id", result.ID.String(), "rows", len(result.Obligations))
	return []byte(b.String())
}

// XLSX returns a one-sheet workbook with the same columns as the CSV export.
func (s *Service) XLSX(result *llm.ExtractionResult) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Obligations"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i, o := range result.Obligations {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, i+1)
		write(2, o.Obligation)
		write(3, o.ResponsibleParty)
		write(4, o.DueDate)
		write(5, string(o.RiskLevel))
		write(6, truncate(o.Summary, 140))
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 6)  // id
	_ = f.SetColWidth(sheet, "B", "B", 60) // obligation
	_ = f.SetColWidth(sheet, "C", "C", 22) // party
	_ = f.SetColWidth(sheet, "D", "D", 16) // due date
	_ = f.SetColWidth(sheet, "E", "E", 12) // risk
	_ = f.SetColWidth(sheet, "F", "F", 48) // summary

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"result_id", result.ID.String(),
		"rows", len(result.Obligations),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
