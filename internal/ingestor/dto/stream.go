package dto

// StreamDataUpdateIngested is the payload published to the update-ingested
// Redis stream after a regulatory update is persisted.
type StreamDataUpdateIngested struct {
	RegulatoryUpdateID uint   `json:"regulatory_update_id"`
	Headline           string `json:"headline"`
	Authority          string `json:"authority"`
}
