package llm

import "strings"

// MaxObligations bounds how many obligations the model is asked to return.
const MaxObligations = 5

const extractionPromptHeader = `You are a legal AI assistant specializing in contract analysis and obligation extraction. Your task is to identify and extract contractual obligations from the provided contract text.

Given the contract text below, identify and extract ALL contractual obligations, including:

1. Specific obligations - What needs to be done - Limit to 5 obligations
2. Responsible parties - Who is responsible (Party A, Party B, Company, Vendor, etc.)
3. Due dates - When obligations are due (specific dates, timeframes, or "Ongoing")
4. Risk levels - Assess risk as Low, Medium, or High based on:
   - Low: Standard obligations, minimal consequences
   - Medium: Important obligations with moderate consequences
   - High: Critical obligations with significant legal/financial consequences
5. Plain English summary - One-line description in simple terms

IMPORTANT GUIDELINES:
- Extract ALL obligations, not just the most obvious ones
- Be thorough in identifying both explicit and implicit obligations
- Use "Ongoing" for continuous obligations without specific end dates
- Identify parties clearly (Party A, Party B, Company, Vendor, etc.)
- Assess risk based on potential consequences and importance
- Provide clear, actionable summaries

Respond ONLY in the following JSON format:
[
  {
    "obligation": "Specific obligation text from contract",
    "responsibleParty": "Party A/Party B/Company/Vendor/etc.",
    "dueDate": "YYYY-MM-DD or timeframe or 'Ongoing'",
    "riskLevel": "Low/Medium/High",
    "summary": "One-line plain English description"
  }
]

Contract Text:
"""
`

const extractionPromptFooter = `
"""

Extract all obligations and respond with valid JSON only.`

const simplePromptHeader = `Extract contractual obligations from this contract text. For each obligation, identify:
1. What needs to be done
2. Who is responsible
3. When it's due
4. Risk level (Low/Medium/High)

Format as JSON:
[
  {
    "obligation": "description",
    "responsibleParty": "party name",
    "dueDate": "date or Ongoing",
    "riskLevel": "Low/Medium/High",
    "summary": "brief description"
  }
]

Contract: `

// BuildExtractionPrompt embeds the contract text into the fixed instruction
// template. Text beyond maxChars is truncated to stay inside model input
// limits; maxChars <= 0 disables truncation.
func BuildExtractionPrompt(contractText string, maxChars int) string {
	var b strings.Builder
	b.WriteString(extractionPromptHeader)
	b.WriteString(truncateText(contractText, maxChars))
	b.WriteString(extractionPromptFooter)
	return b.String()
}

// BuildSimplePrompt is the terser retry template for models that refuse or
// mangle the full instruction set.
func BuildSimplePrompt(contractText string, maxChars int) string {
	return simplePromptHeader + truncateText(contractText, maxChars)
}

func truncateText(s string, maxChars int) string {
	if maxChars <= 0 || len(s) <= maxChars {
		return s
	}
	return s[:maxChars]
}
