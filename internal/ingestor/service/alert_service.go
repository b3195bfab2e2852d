package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/repository"
	"github.com/MEMAtest/horizon-scanner-backend/internal/scoring"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/telegram"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/utils"
)

// AlertService raises alerts for updates relevant to a firm profile and
// escalates the ones that cannot wait.
type AlertService interface {
	EvaluateUpdate(ctx context.Context, profile *entity.FirmProfile, update *entity.RegulatoryUpdate)
	EscalateStaleUnread(ctx context.Context)
}

// NewAlertService creates a new AlertService.
func NewAlertService(
	alertRepo repository.RegulatoryAlertRepository,
	updateRepo repository.RegulatoryUpdateRepository,
	profileRepo repository.FirmProfileRepository,
	notifier telegram.Notifier,
	log *logger.Logger,
) AlertService {
	return &alertService{
		alertRepo:   alertRepo,
		updateRepo:  updateRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		logger:      log,
	}
}

type alertService struct {
	alertRepo   repository.RegulatoryAlertRepository
	updateRepo  repository.RegulatoryUpdateRepository
	profileRepo repository.FirmProfileRepository
	notifier    telegram.Notifier
	logger      *logger.Logger
}

// EvaluateUpdate scores the update against the profile and creates an alert
// when it clears the relevance cutoff. Alert failures are logged, never
// propagated; one bad profile must not stall the stream.
func (s *alertService) EvaluateUpdate(ctx context.Context, profile *entity.FirmProfile, update *entity.RegulatoryUpdate) {
	relevance, factors := scoring.ScoreUpdate(profile, update)
	if relevance <= scoring.RelevanceCutoff {
		return
	}

	priority := scoring.PriorityFor(relevance, update.Urgency, update.ImpactLevel)
	severity := severityFor(priority)

	daysToDeadline := daysUntil(update.ComplianceDeadline)

	urgencyScore := scoring.UrgencyScore(scoring.UrgencyFactors{
		DaysToDeadline:      daysToDeadline,
		BusinessImpactScore: update.BusinessImpactScore,
		FirmRelevance:       scoring.ProfileRelevance(profile, update),
		AIConfidence:        update.AIConfidence,
		Authority:           update.Authority,
	})

	businessContext, err := json.Marshal(map[string]interface{}{
		"relevance_score":   relevance,
		"relevance_factors": factors,
		"priority":          priority,
	})
	if err != nil {
		s.logger.Error("Failed to marshal business context", logger.ErrorField(err))
		return
	}

	suggestedActions, err := json.Marshal(suggestedActionsFor(update, relevance, factors, priority))
	if err != nil {
		s.logger.Error("Failed to marshal suggested actions", logger.ErrorField(err))
		return
	}

	alert := &entity.RegulatoryAlert{
		FirmProfileID:      profile.ID,
		RegulatoryUpdateID: update.ID,
		Severity:           severity,
		UrgencyScore:       urgencyScore,
		BusinessContext:    businessContext,
		SuggestedActions:   suggestedActions,
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		s.logger.Error("Failed to create alert",
			logger.ErrorField(err),
			logger.Field("firm_profile_id", profile.ID),
			logger.Field("update_id", update.ID),
		)
		return
	}

	s.logger.Info("Alert created",
		logger.Field("alert_id", alert.ID),
		logger.Field("firm_profile_id", profile.ID),
		logger.StringField("severity", severity),
		logger.IntField("urgency_score", urgencyScore),
	)

	if scoring.ShouldEscalate(severity, urgencyScore, daysToDeadline, 0) {
		s.escalate(ctx, alert, update, profile.Name)
	}
}

// EscalateStaleUnread escalates alerts that have stayed unread long enough
// for the escalation gate to trip on age. Runs on a ticker; re-checks the
// gate so a deadline that has crept inside the window also escalates.
func (s *alertService) EscalateStaleUnread(ctx context.Context) {
	alerts, err := s.alertRepo.FindUnreadUnescalated(ctx)
	if err != nil {
		s.logger.Error("Failed to load unread alerts", logger.ErrorField(err))
		return
	}

	now := utils.TimeNowUK()
	for i := range alerts {
		alert := &alerts[i]

		update, err := s.updateRepo.FindByID(ctx, alert.RegulatoryUpdateID)
		if err != nil {
			s.logger.Error("Failed to load update for alert", logger.ErrorField(err), logger.Field("alert_id", alert.ID))
			continue
		}

		unreadFor := now.Sub(alert.CreatedAt)
		if !scoring.ShouldEscalate(alert.Severity, alert.UrgencyScore, daysUntil(update.ComplianceDeadline), unreadFor) {
			continue
		}

		firmName := ""
		if profile, err := s.profileRepo.FindByID(ctx, alert.FirmProfileID); err == nil {
			firmName = profile.Name
		}

		s.logger.Info("Escalating stale unread alert",
			logger.Field("alert_id", alert.ID),
			logger.Field("unread_for", unreadFor),
		)
		s.escalate(ctx, alert, update, firmName)
	}
}

func daysUntil(deadline *time.Time) *int {
	if deadline == nil {
		return nil
	}
	days := int(math.Ceil(time.Until(*deadline).Hours() / 24))
	return &days
}

func (s *alertService) escalate(ctx context.Context, alert *entity.RegulatoryAlert, update *entity.RegulatoryUpdate, firmName string) {
	now := utils.TimeNowUK()
	if err := s.alertRepo.MarkEscalated(ctx, alert.ID, now); err != nil {
		s.logger.Error("Failed to mark alert escalated", logger.ErrorField(err), logger.Field("alert_id", alert.ID))
		return
	}
	alert.EscalatedAt = &now

	if s.notifier == nil {
		return
	}
	message := telegram.FormatEscalatedAlertMessage(alert, update, firmName)
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("Failed to send escalation notification", logger.ErrorField(err), logger.Field("alert_id", alert.ID))
	}
}

func severityFor(priority scoring.Priority) string {
	switch priority {
	case scoring.PriorityCritical:
		return entity.AlertSeverityCritical
	case scoring.PriorityHigh:
		return entity.AlertSeverityUrgent
	case scoring.PriorityMedium:
		return entity.AlertSeverityWarning
	default:
		return entity.AlertSeverityInfo
	}
}

// suggestedActionsFor derives the action list stored on the alert from the
// compliance action the scorer would assign to this update.
func suggestedActionsFor(update *entity.RegulatoryUpdate, relevance int, factors []string, priority scoring.Priority) []string {
	scored := []scoring.ScoredUpdate{{
		Update:               *update,
		RelevanceScore:       relevance,
		RelevanceFactors:     factors,
		PersonalizedPriority: priority,
	}}

	actions := []string{}
	for _, action := range scoring.ComplianceActions(scored) {
		title := action.Title
		if action.Deadline != "" {
			title = title + " by " + action.Deadline
		}
		actions = append(actions, title)
	}
	return actions
}
