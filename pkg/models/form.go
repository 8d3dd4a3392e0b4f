package models

import (
	"errors"
	"fmt"
	"time"
)

// TimestampLayout matches the ISO-8601 form browsers emit (millisecond precision, UTC).
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var ErrUnknownFormType = errors.New("unknown form type")

// FormType identifies which lead-capture form produced a submission
type FormType string

const (
	FormTypeHero    FormType = "hero"
	FormTypeContact FormType = "contact"
)

// Field names shared by the landing page forms
const (
	FieldName    = "name"
	FieldDOB     = "dob"
	FieldPhone   = "phone"
	FieldService = "service"
	FieldMessage = "message"
)

// RequiredFields are carried by every form
var RequiredFields = []string{FieldName, FieldDOB, FieldPhone}

// ParseFormType validates a form tag
func ParseFormType(s string) (FormType, error) {
	switch FormType(s) {
	case FormTypeHero, FormTypeContact:
		return FormType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormType, s)
}

// Fields lists the named controls the form carries
func (t FormType) Fields() []string {
	fields := append([]string{}, RequiredFields...)
	if t == FormTypeContact {
		fields = append(fields, FieldService, FieldMessage)
	}
	return fields
}

// FieldSource exposes named field values; present is false when the form has no such control
type FieldSource interface {
	Field(name string) (value string, present bool)
}

// SubmissionPayload is the JSON body posted to the lead webhook
type SubmissionPayload struct {
	FormType  FormType `json:"formType"`
	Timestamp string   `json:"timestamp"`
	Name      string   `json:"name"`
	DOB       string   `json:"dob"`
	Phone     string   `json:"phone"`
	Service   string   `json:"service,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// NewSubmissionPayload builds a payload from the current field values.
// Optional fields are kept only when the form carries them and they are non-empty.
func NewSubmissionPayload(formType FormType, at time.Time, fields FieldSource) SubmissionPayload {
	get := func(name string) string {
		v, _ := fields.Field(name)
		return v
	}

	payload := SubmissionPayload{
		FormType:  formType,
		Timestamp: at.UTC().Format(TimestampLayout),
		Name:      get(FieldName),
		DOB:       get(FieldDOB),
		Phone:     get(FieldPhone),
	}

	if v, ok := fields.Field(FieldService); ok && v != "" {
		payload.Service = v
	}
	if v, ok := fields.Field(FieldMessage); ok && v != "" {
		payload.Message = v
	}

	return payload
}
