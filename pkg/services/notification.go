package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"dental-leads/pkg/logger"
	"dental-leads/pkg/models"
	"dental-leads/pkg/ui"
)

// Notifier is a best-effort side channel told about every successful lead.
// Delivery is never guaranteed.
type Notifier interface {
	Notify(ctx context.Context, payload models.SubmissionPayload) error
}

// ComposeLeadSummary formats a lead as a short message for the clinic staff
func ComposeLeadSummary(p models.SubmissionPayload, m ui.Messages) string {
	lines := []string{
		m.SummaryTitle,
		fmt.Sprintf("%s: %s", m.SummaryName, p.Name),
		fmt.Sprintf("%s: %s", m.SummaryDOB, p.DOB),
		fmt.Sprintf("%s: %s", m.SummaryPhone, p.Phone),
	}
	if p.Service != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", m.SummaryService, p.Service))
	}
	if p.Message != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", m.SummaryMessage, p.Message))
	}
	return strings.Join(lines, "\n")
}

// LogNotifier only logs the composed summary
type LogNotifier struct {
	Messages ui.Messages
}

func (n LogNotifier) Notify(_ context.Context, payload models.SubmissionPayload) error {
	logger.Info("whatsapp notification data",
		zap.String("form_type", string(payload.FormType)),
		zap.String("summary", ComposeLeadSummary(payload, n.Messages)),
	)
	return nil
}

// MessageSender delivers a text message to a phone number (see clients/whatsapp)
type MessageSender interface {
	SendMessage(to, body string) error
}

// WhatsAppNotifier sends the summary to the clinic's WhatsApp number
type WhatsAppNotifier struct {
	client   MessageSender
	to       string
	messages ui.Messages
}

func NewWhatsAppNotifier(client MessageSender, to string, messages ui.Messages) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		client:   client,
		to:       to,
		messages: messages,
	}
}

func (n *WhatsAppNotifier) Notify(ctx context.Context, payload models.SubmissionPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.client.SendMessage(n.to, ComposeLeadSummary(payload, n.messages)); err != nil {
		return fmt.Errorf("error notifying clinic: %w", err)
	}
	return nil
}
