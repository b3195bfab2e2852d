package dto

// IntelligenceRequest asks for a personalized scoring pass. Either a stored
// profile (by user id) or an inline profile payload must be supplied; the
// inline form serves anonymous dashboard sessions.
type IntelligenceRequest struct {
	UserID  string                    `json:"user_id,omitempty"`
	Profile *CreateFirmProfileRequest `json:"profile,omitempty"`
}
