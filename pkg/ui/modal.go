package ui

import (
	"sync"
	"time"
)

// DefaultDismissDelay is how long the confirmation overlay stays up on its own
const DefaultDismissDelay = 5 * time.Second

// Overlay is shown after a successful submission
type Overlay interface {
	Show()
}

// Timer is the part of *time.Timer the modal needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type ModalOption func(*Modal)

// WithAfterFunc replaces the scheduler used for auto-dismissal
func WithAfterFunc(fn AfterFunc) ModalOption {
	return func(m *Modal) { m.afterFunc = fn }
}

// OnVisibilityChange registers a hook called after every show/hide
func OnVisibilityChange(fn func(visible bool)) ModalOption {
	return func(m *Modal) { m.onChange = fn }
}

// Modal is the confirmation overlay. It hides itself after delay.
type Modal struct {
	mu         sync.Mutex
	visible    bool
	delay      time.Duration
	generation uint64
	timer      Timer
	afterFunc  AfterFunc
	onChange   func(visible bool)
}

func NewModal(delay time.Duration, opts ...ModalOption) *Modal {
	if delay <= 0 {
		delay = DefaultDismissDelay
	}
	m := &Modal{delay: delay, afterFunc: realAfterFunc}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Show makes the overlay visible and (re)arms the auto-dismiss timer
func (m *Modal) Show() {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.generation++
	gen := m.generation
	m.visible = true
	m.timer = m.afterFunc(m.delay, func() { m.expire(gen) })
	m.mu.Unlock()

	m.notify(true)
}

// Hide dismisses the overlay immediately
func (m *Modal) Hide() {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.generation++
	wasVisible := m.visible
	m.visible = false
	m.mu.Unlock()

	if wasVisible {
		m.notify(false)
	}
}

// ClickBackdrop handles a click outside the dialog content
func (m *Modal) ClickBackdrop() {
	m.Hide()
}

func (m *Modal) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

func (m *Modal) DismissDelay() time.Duration {
	return m.delay
}

func (m *Modal) expire(gen uint64) {
	m.mu.Lock()
	// a later Show or Hide owns the overlay now
	if gen != m.generation || !m.visible {
		m.mu.Unlock()
		return
	}
	m.visible = false
	m.timer = nil
	m.mu.Unlock()

	m.notify(false)
}

func (m *Modal) notify(visible bool) {
	if m.onChange != nil {
		m.onChange(visible)
	}
}
