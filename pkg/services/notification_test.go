package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-leads/pkg/models"
	"dental-leads/pkg/ui"
)

type whatsappStub struct {
	to, body string
	err      error
}

func (w *whatsappStub) SendMessage(to, body string) error {
	w.to, w.body = to, body
	return w.err
}

func TestComposeLeadSummaryArabic(t *testing.T) {
	p := models.SubmissionPayload{Name: "أحمد", DOB: "1990-01-01", Phone: "01012345678", Service: "تنظيف"}

	want := "استفسار جديد من الموقع الإلكتروني:\n" +
		"الاسم: أحمد\n" +
		"تاريخ الميلاد: 1990-01-01\n" +
		"رقم الهاتف: 01012345678\n" +
		"الخدمة المطلوبة: تنظيف"
	assert.Equal(t, want, ComposeLeadSummary(p, ui.Arabic))
}

func TestComposeLeadSummarySkipsEmptyOptionalLines(t *testing.T) {
	p := models.SubmissionPayload{Name: "Mona", DOB: "1985-05-05", Phone: "01100000000"}

	summary := ComposeLeadSummary(p, ui.English)
	assert.NotContains(t, summary, "Requested service")
	assert.NotContains(t, summary, "Notes")
	assert.Contains(t, summary, "Phone: 01100000000")
}

func TestWhatsAppNotifierSendsSummary(t *testing.T) {
	client := &whatsappStub{}
	n := NewWhatsAppNotifier(client, "+201000000000", ui.English)

	p := models.SubmissionPayload{Name: "Mona", DOB: "1985-05-05", Phone: "01100000000", Message: "evening please"}
	require.NoError(t, n.Notify(context.Background(), p))

	assert.Equal(t, "+201000000000", client.to)
	assert.Equal(t, ComposeLeadSummary(p, ui.English), client.body)
}

func TestWhatsAppNotifierWrapsErrors(t *testing.T) {
	sendErr := errors.New("twilio down")
	n := NewWhatsAppNotifier(&whatsappStub{err: sendErr}, "+201000000000", ui.English)

	err := n.Notify(context.Background(), models.SubmissionPayload{})
	assert.ErrorIs(t, err, sendErr)
}

func TestLogNotifierNeverFails(t *testing.T) {
	assert.NoError(t, LogNotifier{Messages: ui.Arabic}.Notify(context.Background(), models.SubmissionPayload{Name: "x"}))
}
