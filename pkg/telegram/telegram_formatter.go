package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
)

// FormatEscalatedAlertMessage formats an escalated regulatory alert into a
// Markdown string for Telegram.
func FormatEscalatedAlertMessage(alert *entity.RegulatoryAlert, update *entity.RegulatoryUpdate, firmName string) string {
	var builder strings.Builder

	var severityIcon string
	switch alert.Severity {
	case entity.AlertSeverityCritical:
		severityIcon = "🚨"
	case entity.AlertSeverityUrgent:
		severityIcon = "⚠️"
	case entity.AlertSeverityWarning:
		severityIcon = "🔶"
	default:
		severityIcon = "ℹ️"
	}

	builder.WriteString(fmt.Sprintf("%s *Regulatory Alert Escalated* %s\n\n", severityIcon, severityIcon))
	builder.WriteString(fmt.Sprintf("🏛 *Authority:* %s\n", update.Authority))
	builder.WriteString(fmt.Sprintf("📋 *Headline:* %s\n", update.Headline))
	builder.WriteString(fmt.Sprintf("🏢 *Firm:* %s\n\n", firmName))

	builder.WriteString(fmt.Sprintf("🔥 *Severity:* %s\n", alert.Severity))
	builder.WriteString(fmt.Sprintf("🎯 *Urgency Score:* %d/100\n", alert.UrgencyScore))

	if update.ComplianceDeadline != nil {
		days := int(time.Until(*update.ComplianceDeadline).Hours() / 24)
		builder.WriteString(fmt.Sprintf("⏰ *Deadline:* %s (%d days)\n", update.ComplianceDeadline.Format("2 January 2006"), days))
	}

	if update.AISummary != "" {
		builder.WriteString(fmt.Sprintf("\n💬 *Summary:*\n_%s_\n", update.AISummary))
	}

	if update.URL != "" {
		builder.WriteString(fmt.Sprintf("\n🔗 %s\n", update.URL))
	}

	return builder.String()
}

// FormatIngestionFailureMessage formats a feed polling failure notification.
func FormatIngestionFailureMessage(sourceName, sourceURL string, at time.Time, errMsg string) string {
	return fmt.Sprintf(`📛 [INGESTION FAILURE]
%s
📡 %s
🔗 %s
⚠️ %s
`, at.Format("2006-01-02 15:04:05"), sourceName, sourceURL, errMsg)
}
