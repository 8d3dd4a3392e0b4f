package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dental-leads/pkg/ui"
)

func TestCountdownUntil(t *testing.T) {
	deadline := time.Date(2025, 11, 15, 23, 59, 59, 0, time.UTC)
	now := deadline.Add(-(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 600*time.Millisecond))

	c := CountdownUntil(deadline, now)
	assert.Equal(t, Countdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, c)
	assert.Equal(t, "Offer ends in: 2 days 3 hours 4 minutes", c.Label(ui.English))
	assert.Equal(t, "باقي على انتهاء العرض: 2 يوم 3 ساعة 4 دقيقة", c.Label(ui.Arabic))
}

func TestCountdownExpired(t *testing.T) {
	deadline := time.Date(2025, 11, 15, 23, 59, 59, 0, time.UTC)

	for _, now := range []time.Time{deadline, deadline.Add(time.Second)} {
		c := CountdownUntil(deadline, now)
		assert.True(t, c.Expired)
		assert.Equal(t, "انتهى العرض", c.Label(ui.Arabic))
	}
}

func TestOfferCountdownUsesClock(t *testing.T) {
	deadline := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	now := deadline.Add(-90 * time.Minute)

	o := NewOfferCountdown(deadline, func() time.Time { return now })
	assert.Equal(t, Countdown{Hours: 1, Minutes: 30}, o.Current())
	assert.Equal(t, deadline, o.Deadline())
}
