package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dental-leads/pkg/logger"
)

func TestTrackEventLogsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	defer logger.Replace(zap.New(core))()

	TrackEvent(EventCTAClick, map[string]string{
		"button_text":     "احجز الآن",
		"button_location": "offer",
	})

	entries := logs.FilterMessage("event tracked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]any{
		"event":           "cta_click",
		"button_text":     "احجز الآن",
		"button_location": "offer",
	}, entries[0].ContextMap())
}
