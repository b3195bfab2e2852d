package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityFor(t *testing.T) {
	assert.Equal(t, entity.AlertSeverityCritical, severityFor(scoring.PriorityCritical))
	assert.Equal(t, entity.AlertSeverityUrgent, severityFor(scoring.PriorityHigh))
	assert.Equal(t, entity.AlertSeverityWarning, severityFor(scoring.PriorityMedium))
	assert.Equal(t, entity.AlertSeverityInfo, severityFor(scoring.PriorityLow))
}

func TestSuggestedActionsForCriticalConsultation(t *testing.T) {
	update := &entity.RegulatoryUpdate{
		ID:       1,
		Headline: "Consultation on complaints handling",
		KeyDates: "responses due by 30 September 2026",
	}

	actions := suggestedActionsFor(update, 90, []string{"High relevance to Banking"}, scoring.PriorityCritical)

	require.Len(t, actions, 1)
	assert.Contains(t, actions[0], "Review and respond to consultation")
	assert.Contains(t, actions[0], "30 September 2026")
}

func TestSuggestedActionsForLowPriorityIsEmpty(t *testing.T) {
	update := &entity.RegulatoryUpdate{ID: 2, Headline: "Speech by the chief executive"}

	actions := suggestedActionsFor(update, 30, nil, scoring.PriorityMedium)

	assert.Empty(t, actions)
}

type stubNotifier struct {
	messages []string
}

func (n *stubNotifier) SendMessage(text string) error {
	n.messages = append(n.messages, text)
	return nil
}

type stubAlertRepo struct {
	unread    []entity.RegulatoryAlert
	created   []*entity.RegulatoryAlert
	escalated []uint
}

func (r *stubAlertRepo) Create(ctx context.Context, alert *entity.RegulatoryAlert) error {
	r.created = append(r.created, alert)
	return nil
}

func (r *stubAlertRepo) FindUnreadUnescalated(ctx context.Context) ([]entity.RegulatoryAlert, error) {
	return r.unread, nil
}

func (r *stubAlertRepo) MarkEscalated(ctx context.Context, id uint, at time.Time) error {
	r.escalated = append(r.escalated, id)
	return nil
}

type stubUpdateRepo struct {
	updates map[uint]*entity.RegulatoryUpdate
}

func (r *stubUpdateRepo) CreateIgnoreConflict(ctx context.Context, update *entity.RegulatoryUpdate) (bool, error) {
	return true, nil
}

func (r *stubUpdateRepo) FindByID(ctx context.Context, id uint) (*entity.RegulatoryUpdate, error) {
	update, ok := r.updates[id]
	if !ok {
		return nil, fmt.Errorf("regulatory update %d not found", id)
	}
	return update, nil
}

func (r *stubUpdateRepo) FilterExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

type stubProfileRepo struct {
	profiles map[uint]*entity.FirmProfile
}

func (r *stubProfileRepo) FindAllActive(ctx context.Context) ([]entity.FirmProfile, error) {
	var profiles []entity.FirmProfile
	for _, p := range r.profiles {
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (r *stubProfileRepo) FindByID(ctx context.Context, id uint) (*entity.FirmProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("firm profile %d not found", id)
	}
	return profile, nil
}

func TestEscalateStaleUnreadEscalatesOnlyAgedAlerts(t *testing.T) {
	now := time.Now()
	alertRepo := &stubAlertRepo{unread: []entity.RegulatoryAlert{
		{ID: 11, FirmProfileID: 7, RegulatoryUpdateID: 3, Severity: entity.AlertSeverityInfo, UrgencyScore: 40, CreatedAt: now.Add(-30 * time.Hour)},
		{ID: 12, FirmProfileID: 7, RegulatoryUpdateID: 3, Severity: entity.AlertSeverityInfo, UrgencyScore: 40, CreatedAt: now.Add(-time.Hour)},
	}}
	updateRepo := &stubUpdateRepo{updates: map[uint]*entity.RegulatoryUpdate{
		3: {ID: 3, Authority: "FCA", Headline: "Reporting changes"},
	}}
	profileRepo := &stubProfileRepo{profiles: map[uint]*entity.FirmProfile{
		7: {ID: 7, Name: "Acme Capital"},
	}}
	notifier := &stubNotifier{}

	svc := NewAlertService(alertRepo, updateRepo, profileRepo, notifier, testLogger())
	svc.EscalateStaleUnread(context.Background())

	require.Equal(t, []uint{11}, alertRepo.escalated)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Acme Capital")
	assert.Contains(t, notifier.messages[0], "Reporting changes")
}

func TestEscalateStaleUnreadPicksUpApproachingDeadline(t *testing.T) {
	now := time.Now()
	deadline := now.Add(3 * 24 * time.Hour)
	alertRepo := &stubAlertRepo{unread: []entity.RegulatoryAlert{
		{ID: 21, FirmProfileID: 7, RegulatoryUpdateID: 5, Severity: entity.AlertSeverityWarning, UrgencyScore: 55, CreatedAt: now.Add(-2 * time.Hour)},
	}}
	updateRepo := &stubUpdateRepo{updates: map[uint]*entity.RegulatoryUpdate{
		5: {ID: 5, Authority: "PRA", Headline: "Capital return due", ComplianceDeadline: &deadline},
	}}
	profileRepo := &stubProfileRepo{profiles: map[uint]*entity.FirmProfile{
		7: {ID: 7, Name: "Acme Capital"},
	}}
	notifier := &stubNotifier{}

	svc := NewAlertService(alertRepo, updateRepo, profileRepo, notifier, testLogger())
	svc.EscalateStaleUnread(context.Background())

	// the alert is fresh, but its deadline is now inside the escalation window
	require.Equal(t, []uint{21}, alertRepo.escalated)
	require.Len(t, notifier.messages, 1)
}
