package repository

import (
	"fmt"
)

// BuildAnalyzeUpdatePrompt builds the enrichment prompt for a single
// regulatory publication. The model must answer with the JSON structure
// decoded by dto.UpdateAnalysisResult.
func BuildAnalyzeUpdatePrompt(authority, title, publishedDate, content string) string {
	return fmt.Sprintf(`You are a UK financial-services regulatory analyst. Analyze the following publication from %s and return structured JSON only.

Title: %s
Published: %s
Content:
%s

Analysis criteria:
- Urgency: "High", "Medium" or "Low" depending on how quickly regulated firms must act
- Impact Level: "Significant", "Moderate" or "Informational"
- Business Impact Score: value between 0.0 (no operational impact) and 10.0 (severe operational impact)
- Confidence Score: value between 0.0 (very uncertain) and 1.0 (very certain)
- Primary Sector: the single most affected sector (e.g. "Banking", "Payments", "Insurance", "Investment Management", "Consumer Credit", "Fintech")
- Applicable Sectors: every sector the publication applies to
- Applicable Firm Types: firm categories affected (e.g. "Bank", "Payment Institution", "Insurer", "Investment Firm", "Credit Broker")
- Sector Relevance Scores: per-sector relevance between 0 (not relevant) and 100 (directly targeted)
- Minimum Firm Size: smallest firm size in scope, one of "small", "medium", "large" or empty when the publication applies regardless of size
- Key Dates: important dates mentioned, formatted as "2 January 2006"
- Compliance Deadline: the response or implementation deadline as "2006-01-02", empty when none

Important:
- "summary" is mandatory and must be written in plain English for a compliance officer.
- When the publication is a speech or general commentary with no direct obligation, use Urgency "Low" and Impact Level "Informational".

Return JSON with exactly this structure:
{
  "summary": "<string - mandatory>",
  "urgency": "High | Medium | Low",
  "impact_level": "Significant | Moderate | Informational",
  "business_impact_score": <float 0.0-10.0>,
  "confidence_score": <float 0.0-1.0>,
  "primary_sector": "<string>",
  "applicable_sectors": ["<string>"],
  "applicable_firm_types": ["<string>"],
  "sector_relevance_scores": {"<sector>": <float 0-100>},
  "minimum_firm_size": "small | medium | large | ",
  "key_dates": ["<string>"],
  "compliance_deadline": "<YYYY-MM-DD or empty>"
}`, authority, title, publishedDate, content)
}
