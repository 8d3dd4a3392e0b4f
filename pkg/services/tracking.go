package services

import (
	"sort"

	"go.uber.org/zap"

	"dental-leads/pkg/logger"
)

// Page events reported by the landing page
const (
	EventFormSubmission = "form_submission"
	EventCTAClick       = "cta_click"
	EventWhatsAppClick  = "whatsapp_click"
)

// TrackEvent records a page interaction in the logs
func TrackEvent(name string, data map[string]string) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys)+1)
	fields = append(fields, zap.String("event", name))
	for _, k := range keys {
		fields = append(fields, zap.String(k, data[k]))
	}
	logger.Info("event tracked", fields...)
}
