package ui

import (
	"errors"
	"fmt"
	"sync"
)

var ErrUnknownField = errors.New("unknown form field")

// Form holds the named controls of one lead form and its submit control
type Form struct {
	mu       sync.Mutex
	defaults map[string]string
	values   map[string]string
	control  Control
}

// NewForm declares the given fields with empty defaults
func NewForm(control Control, fields ...string) *Form {
	f := &Form{
		defaults: make(map[string]string, len(fields)),
		values:   make(map[string]string, len(fields)),
		control:  control,
	}
	for _, name := range fields {
		f.defaults[name] = ""
		f.values[name] = ""
	}
	return f
}

// SetDefault declares a field (if needed) and sets the value Reset restores
func (f *Form) SetDefault(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[name]; !ok {
		f.values[name] = value
	}
	f.defaults[name] = value
}

// Set updates a declared field
func (f *Form) Set(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.defaults[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	f.values[name] = value
	return nil
}

func (f *Form) Field(name string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[name]
	return v, ok
}

// Reset restores every field to its default
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for name, def := range f.defaults {
		f.values[name] = def
	}
}

// Values returns a copy of the current field values
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *Form) SubmitControl() Control {
	return f.control
}
