//go:build js && wasm

// Command landing-wasm wires the lead forms, success modal, phone inputs and
// offer countdown of the landing page. Build with GOOS=js GOARCH=wasm.
package main

import (
	"context"
	"strings"
	"syscall/js"
	"time"

	"go.uber.org/zap"

	"dental-leads/pkg/clients/webhook"
	"dental-leads/pkg/logger"
	"dental-leads/pkg/models"
	"dental-leads/pkg/services"
	"dental-leads/pkg/ui"
	"dental-leads/pkg/utils"
)

// Overridable with -ldflags "-X main.webhookURL=... -X main.offerDeadline=..."
var (
	webhookURL    = ""
	offerDeadline = "2025-11-15T23:59:59+02:00"
	locale        = "ar"
)

const spinner = `<i class="fas fa-spinner fa-spin"></i> `

var document = js.Global().Get("document")

// domForm reads field values the same way the browser serializes the form
type domForm struct {
	el      js.Value
	control *ui.Button
}

func newDOMForm(el js.Value) *domForm {
	f := &domForm{el: el}

	btn := el.Call("querySelector", `button[type="submit"]`)
	label := ""
	if truthy(btn) {
		label = btn.Get("innerHTML").String()
	}
	f.control = ui.NewButton(label, func(label string, disabled bool) {
		if !truthy(btn) {
			return
		}
		btn.Set("disabled", disabled)
		btn.Set("innerHTML", label)
	})
	return f
}

func (f *domForm) Field(name string) (string, bool) {
	data := js.Global().Get("FormData").New(f.el)
	v := data.Call("get", name)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (f *domForm) Reset() {
	f.el.Call("reset")
}

func (f *domForm) SubmitControl() ui.Control {
	return f.control
}

type windowAlerter struct{}

func (windowAlerter) Alert(msg string) {
	js.Global().Call("alert", msg)
}

func main() {
	messages := ui.MessagesFor(locale)
	buttonMessages := messages
	buttonMessages.Sending = spinner + messages.Sending

	url := webhookURL
	if body := document.Get("body"); truthy(body) {
		if v := body.Get("dataset").Get("webhookUrl"); v.Type() == js.TypeString && v.String() != "" {
			url = v.String()
		}
	}
	if url == "" {
		logger.Error("webhook url not configured, lead forms disabled", nil)
	}

	modal := bindModal()

	handler := services.NewLeadSubmissionHandler(services.SubmissionDeps{
		Webhook:  webhook.NewClient(url, nil),
		Notifier: services.LogNotifier{Messages: messages},
		Messages: buttonMessages,
		Now:      time.Now,
	}, modal, windowAlerter{})

	if url != "" {
		bindForm("heroForm", models.FormTypeHero, handler)
		bindForm("contactForm", models.FormTypeContact, handler)
	}

	bindPhoneMask(messages)
	bindTracking()

	if deadline, err := time.Parse(time.RFC3339, offerDeadline); err != nil {
		logger.Error("invalid offer deadline", err)
	} else {
		go runCountdown(services.NewOfferCountdown(deadline, time.Now), messages)
	}

	select {}
}

// bindForm registers the single submit listener for a form
func bindForm(id string, formType models.FormType, handler *services.LeadSubmissionHandler) {
	el := document.Call("getElementById", id)
	if !truthy(el) {
		return
	}
	form := newDOMForm(el)

	el.Call("addEventListener", "submit", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		services.TrackEvent(services.EventFormSubmission, map[string]string{
			"form_id":   id,
			"form_type": string(formType),
		})
		if form.control.Disabled() {
			return nil
		}
		// callbacks must not block the event loop
		go func() {
			if err := handler.Submit(context.Background(), form, formType); err != nil {
				logger.Debug("lead form submit failed", zap.String("form", id), zap.Error(err))
			}
		}()
		return nil
	}))
}

func bindModal() *ui.Modal {
	el := document.Call("getElementById", "successModal")
	modal := ui.NewModal(ui.DefaultDismissDelay, ui.OnVisibilityChange(func(visible bool) {
		if !truthy(el) {
			return
		}
		if visible {
			el.Get("classList").Call("add", "active")
		} else {
			el.Get("classList").Call("remove", "active")
		}
	}))

	closeFn := js.FuncOf(func(this js.Value, args []js.Value) any {
		modal.Hide()
		return nil
	})
	js.Global().Set("closeModal", closeFn)

	if !truthy(el) {
		return modal
	}

	el.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		if args[0].Get("target").Equal(el) {
			modal.ClickBackdrop()
		}
		return nil
	}))

	forEach(el.Call("querySelectorAll", `[data-dismiss="modal"]`), func(btn js.Value) {
		btn.Call("addEventListener", "click", closeFn)
	})

	return modal
}

// bindPhoneMask masks tel inputs while typing and flags invalid numbers on blur,
// so native form validation blocks the submit
func bindPhoneMask(messages ui.Messages) {
	forEach(document.Call("querySelectorAll", `input[type="tel"]`), func(input js.Value) {
		input.Call("addEventListener", "input", js.FuncOf(func(this js.Value, args []js.Value) any {
			target := args[0].Get("target")
			target.Set("value", utils.NormalizePhone(target.Get("value").String()))
			return nil
		}))
		input.Call("addEventListener", "blur", js.FuncOf(func(this js.Value, args []js.Value) any {
			target := args[0].Get("target")
			value := target.Get("value").String()
			if value != "" && !utils.ValidEgyptianPhone(value) {
				target.Call("setCustomValidity", messages.InvalidPhone)
			} else {
				target.Call("setCustomValidity", "")
			}
			return nil
		}))
	})
}

func bindTracking() {
	forEach(document.Call("querySelectorAll", ".cta-button, .offer-button, .offer-cta"), func(btn js.Value) {
		btn.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
			location := "unknown"
			if section := btn.Call("closest", "section"); truthy(section) && section.Get("id").String() != "" {
				location = section.Get("id").String()
			}
			services.TrackEvent(services.EventCTAClick, map[string]string{
				"button_text":     strings.TrimSpace(btn.Get("textContent").String()),
				"button_location": location,
			})
			return nil
		}))
	})

	if float := document.Call("querySelector", ".whatsapp-float"); truthy(float) {
		float.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
			services.TrackEvent(services.EventWhatsAppClick, map[string]string{"source": "floating_button"})
			return nil
		}))
	}
}

func runCountdown(offer *services.OfferCountdown, messages ui.Messages) {
	render := func() {
		current := offer.Current()
		icon := `<i class="fas fa-clock"></i> `
		if current.Expired {
			icon = `<i class="fas fa-exclamation-circle"></i> `
		}
		html := icon + current.Label(messages)

		forEach(document.Call("querySelectorAll", ".offer-deadline"), func(el js.Value) {
			if strings.EqualFold(el.Get("dataset").Get("countdown").String(), "true") {
				el.Set("innerHTML", html)
			}
		})
	}

	render()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		render()
	}
}

func forEach(list js.Value, fn func(js.Value)) {
	if !truthy(list) {
		return
	}
	for i := 0; i < list.Length(); i++ {
		fn(list.Index(i))
	}
}

func truthy(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}
