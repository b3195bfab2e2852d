package repository

import (
	"context"

	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/dto"
)

// AIRepository enriches raw regulatory publications with structured
// analysis fields.
type AIRepository interface {
	AnalyzeUpdate(ctx context.Context, authority, title, publishedDate, content string) (*dto.UpdateAnalysisResult, error)
}
