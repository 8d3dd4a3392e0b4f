package ui

import "sync"

// Control is a submit control whose label and enabled state the handler owns during a submission
type Control interface {
	Label() string
	SetLabel(label string)
	Disabled() bool
	SetDisabled(disabled bool)
}

// Button is an in-memory Control. OnChange, when set, receives every state change.
type Button struct {
	mu       sync.Mutex
	label    string
	disabled bool
	onChange func(label string, disabled bool)
}

// NewButton creates an enabled button
func NewButton(label string, onChange func(label string, disabled bool)) *Button {
	return &Button{label: label, onChange: onChange}
}

func (b *Button) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.label
}

func (b *Button) SetLabel(label string) {
	b.mu.Lock()
	b.label = label
	disabled := b.disabled
	b.mu.Unlock()
	b.notify(label, disabled)
}

func (b *Button) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

func (b *Button) SetDisabled(disabled bool) {
	b.mu.Lock()
	b.disabled = disabled
	label := b.label
	b.mu.Unlock()
	b.notify(label, disabled)
}

func (b *Button) notify(label string, disabled bool) {
	if b.onChange != nil {
		b.onChange(label, disabled)
	}
}
