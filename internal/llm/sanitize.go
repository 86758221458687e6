package llm

import (
	"strings"
)

// Canonical spellings for the party names the prompt steers the model toward.
var partyNames = map[string]string{
	"party a":       "Party A",
	"party b":       "Party B",
	"company":       "Company",
	"vendor":        "Vendor",
	"client":        "Client",
	"customer":      "Customer",
	"supplier":      "Supplier",
	"contractor":    "Contractor",
	"subcontractor": "Subcontractor",
	"employer":      "Employer",
	"employee":      "Employee",
	"provider":      "Provider",
}

var smartQuoteReplacer = strings.NewReplacer(
	"“", "", // left double quote
	"”", "", // right double quote
	"‘", "'",
	"’", "'",
	`"`, "",
)

// SanitizeObligations post-processes parsed records in place: canonical
// party names, collapsed whitespace, quote artifacts stripped from the
// obligation text, and summaries terminated with a period.
func SanitizeObligations(obligations []Obligation) {
	for i := range obligations {
		o := &obligations[i]
		o.ResponsibleParty = SanitizePartyName(o.ResponsibleParty)
		o.Obligation = cleanObligationText(o.Obligation)
		o.Summary = cleanSummaryText(o.Summary)
	}
}

// SanitizePartyName maps common casing variants onto canonical party names.
func SanitizePartyName(party string) string {
	trimmed := strings.TrimSpace(party)
	if canonical, ok := partyNames[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

func cleanObligationText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	return strings.TrimSpace(smartQuoteReplacer.Replace(text))
}

func cleanSummaryText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text != "" && !strings.HasSuffix(text, ".") {
		text += "."
	}
	return text
}
