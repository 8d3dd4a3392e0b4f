package services

import (
	"fmt"
	"time"

	"dental-leads/pkg/ui"
)

// Countdown is the time left until the offer deadline
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// CountdownUntil splits the remaining time into whole days, hours, minutes and seconds
func CountdownUntil(deadline, now time.Time) Countdown {
	distance := deadline.Sub(now)
	if distance <= 0 {
		return Countdown{Expired: true}
	}

	day := 24 * time.Hour
	return Countdown{
		Days:    int(distance / day),
		Hours:   int(distance % day / time.Hour),
		Minutes: int(distance % time.Hour / time.Minute),
		Seconds: int(distance % time.Minute / time.Second),
	}
}

// Label renders the countdown the way the offer banner shows it (seconds are not shown)
func (c Countdown) Label(m ui.Messages) string {
	if c.Expired {
		return m.OfferExpired
	}
	return fmt.Sprintf(m.OfferRemaining, c.Days, c.Hours, c.Minutes)
}

// OfferCountdown tracks a single offer deadline
type OfferCountdown struct {
	deadline time.Time
	now      func() time.Time
}

func NewOfferCountdown(deadline time.Time, now func() time.Time) *OfferCountdown {
	if now == nil {
		now = time.Now
	}
	return &OfferCountdown{deadline: deadline, now: now}
}

func (o *OfferCountdown) Deadline() time.Time {
	return o.deadline
}

func (o *OfferCountdown) Current() Countdown {
	return CountdownUntil(o.deadline, o.now())
}
