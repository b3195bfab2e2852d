package service

import (
	"context"
	"fmt"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/repository"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
)

// AlertService exposes the read/ack side of regulatory alerts.
type AlertService interface {
	GetAlerts(ctx context.Context, firmProfileID uint, unreadOnly bool) ([]*dto.AlertResponse, error)
	MarkRead(ctx context.Context, alertID uint) error
}

// NewAlertService creates a new alert service.
func NewAlertService(alertRepo repository.RegulatoryAlertRepository, logger *logger.Logger) AlertService {
	return &alertService{alertRepo: alertRepo, logger: logger}
}

type alertService struct {
	alertRepo repository.RegulatoryAlertRepository
	logger    *logger.Logger
}

func (s *alertService) GetAlerts(ctx context.Context, firmProfileID uint, unreadOnly bool) ([]*dto.AlertResponse, error) {
	alerts, err := s.alertRepo.FindByProfileID(ctx, firmProfileID, unreadOnly)
	if err != nil {
		s.logger.Error("Failed to fetch alerts", logger.ErrorField(err), logger.Field("firm_profile_id", firmProfileID))
		return nil, err
	}
	responses := make([]*dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, dto.NewAlertResponse(&alerts[i]))
	}
	return responses, nil
}

func (s *alertService) MarkRead(ctx context.Context, alertID uint) error {
	if err := s.alertRepo.MarkRead(ctx, alertID); err != nil {
		s.logger.Error("Failed to mark alert read", logger.ErrorField(err), logger.Field("alert_id", alertID))
		return fmt.Errorf("failed to mark alert read: %w", err)
	}
	return nil
}
