package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"dental-leads/pkg/clients/webhook"
	"dental-leads/pkg/logger"
	"dental-leads/pkg/models"
	"dental-leads/pkg/ui"
	"dental-leads/pkg/utils"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Form is a lead form as seen by the submission handler
type Form interface {
	models.FieldSource
	Reset()
	SubmitControl() ui.Control
}

// Recorder receives submission metrics
type Recorder interface {
	ObserveSubmission(formType, outcome string)
	ObserveWebhookLatency(formType string, seconds float64)
}

// SubmissionDeps are the collaborators shared by every submission
type SubmissionDeps struct {
	Webhook  webhook.Client
	Notifier Notifier
	Messages ui.Messages
	Metrics  Recorder
	Now      func() time.Time
}

// LeadSubmissionHandler turns a form submit into one webhook call and reflects the outcome in the UI
type LeadSubmissionHandler struct {
	deps    SubmissionDeps
	overlay ui.Overlay
	alerter ui.Alerter
}

// NewLeadSubmissionHandler creates a handler bound to a page's overlay and alerter
func NewLeadSubmissionHandler(deps SubmissionDeps, overlay ui.Overlay, alerter ui.Alerter) *LeadSubmissionHandler {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Messages.Locale == "" {
		deps.Messages = ui.Arabic
	}
	return &LeadSubmissionHandler{
		deps:    deps,
		overlay: overlay,
		alerter: alerter,
	}
}

// Submit posts the form's current values to the webhook.
// On success the overlay is shown, the form reset and the notifier fired.
// On failure the user is alerted and the form left as is.
// The submit control is re-enabled with its original label on every exit.
func (h *LeadSubmissionHandler) Submit(ctx context.Context, form Form, formType models.FormType) error {
	control := form.SubmitControl()
	if control != nil {
		originalLabel := control.Label()
		control.SetDisabled(true)
		control.SetLabel(h.deps.Messages.Sending)
		defer func() {
			control.SetDisabled(false)
			control.SetLabel(originalLabel)
		}()
	}

	payload := models.NewSubmissionPayload(formType, h.deps.Now(), form)
	phoneHash := utils.HashString(payload.Phone)

	logger.Info("submitting lead",
		zap.String("form_type", string(formType)),
		zap.String("phone_hash", phoneHash),
	)

	start := time.Now()
	err := h.deps.Webhook.Send(ctx, payload)
	h.observeLatency(formType, time.Since(start))

	if err != nil {
		logger.Error("lead submission failed", err,
			zap.String("form_type", string(formType)),
			zap.String("phone_hash", phoneHash),
		)
		h.observe(formType, OutcomeFailure)
		if h.alerter != nil {
			h.alerter.Alert(h.deps.Messages.Failure)
		}
		return err
	}

	h.observe(formType, OutcomeSuccess)
	if h.overlay != nil {
		h.overlay.Show()
	}
	form.Reset()

	if h.deps.Notifier != nil {
		go h.notify(context.WithoutCancel(ctx), payload)
	}

	return nil
}

func (h *LeadSubmissionHandler) notify(ctx context.Context, payload models.SubmissionPayload) {
	if err := h.deps.Notifier.Notify(ctx, payload); err != nil {
		logger.Error("lead notification failed", err, zap.String("form_type", string(payload.FormType)))
	}
}

func (h *LeadSubmissionHandler) observe(formType models.FormType, outcome string) {
	if h.deps.Metrics != nil {
		h.deps.Metrics.ObserveSubmission(string(formType), outcome)
	}
}

func (h *LeadSubmissionHandler) observeLatency(formType models.FormType, d time.Duration) {
	if h.deps.Metrics != nil {
		h.deps.Metrics.ObserveWebhookLatency(string(formType), d.Seconds())
	}
}
