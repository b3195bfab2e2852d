package dto

// GeminiAPIRequest is the request payload for the Gemini API.
type GeminiAPIRequest struct {
	Contents []Content `json:"contents"`
}

// Content represents the content of a request or response.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a part of the content.
type Part struct {
	Text string `json:"text"`
}

// GeminiAPIResponse is the response from the Gemini API.
type GeminiAPIResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is a candidate response from the Gemini API.
type Candidate struct {
	Content Content `json:"content"`
}

// UpdateAnalysisResult is the expected JSON structure for an enriched
// regulatory update.
type UpdateAnalysisResult struct {
	Summary               string             `json:"summary"`
	Urgency               string             `json:"urgency"`
	ImpactLevel           string             `json:"impact_level"`
	BusinessImpactScore   float64            `json:"business_impact_score"`
	ConfidenceScore       float64            `json:"confidence_score"`
	PrimarySector         string             `json:"primary_sector"`
	ApplicableSectors     []string           `json:"applicable_sectors"`
	ApplicableFirmTypes   []string           `json:"applicable_firm_types"`
	SectorRelevanceScores map[string]float64 `json:"sector_relevance_scores"`
	MinimumFirmSize       string             `json:"minimum_firm_size"`
	KeyDates              []string           `json:"key_dates"`
	ComplianceDeadline    string             `json:"compliance_deadline"`
}
