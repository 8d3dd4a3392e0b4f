package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dental-leads/pkg/logger"
	"dental-leads/pkg/models"
	"dental-leads/pkg/services"
	"dental-leads/pkg/ui"
	"dental-leads/pkg/utils"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	deps         services.SubmissionDeps
	offer        *services.OfferCountdown
	dismissDelay time.Duration
}

// NewHandlers creates a new Handlers instance
func NewHandlers(deps services.SubmissionDeps, offer *services.OfferCountdown, dismissDelay time.Duration) *Handlers {
	if deps.Messages.Locale == "" {
		deps.Messages = ui.Arabic
	}
	if dismissDelay <= 0 {
		dismissDelay = ui.DefaultDismissDelay
	}
	return &Handlers{
		deps:         deps,
		offer:        offer,
		dismissDelay: dismissDelay,
	}
}

// Register mounts every route on the router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/health", h.HealthCheck)
	router.POST("/api/leads/:formType", h.HandleLeadSubmission)
	router.GET("/api/offer", h.HandleOfferCountdown)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// pageView collects what the page has to render once the submission settles
type pageView struct {
	mu          sync.Mutex
	showModal   bool
	failureText string
}

func (v *pageView) Show() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showModal = true
}

func (v *pageView) Alert(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failureText = msg
}

// HandleLeadSubmission relays a hero or contact form to the lead webhook
func (h *Handlers) HandleLeadSubmission(c *gin.Context) {
	formType, err := models.ParseFormType(c.Param("formType"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown form"})
		return
	}

	values, err := readFields(c)
	if err != nil {
		logger.Debug("invalid lead body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if phone, ok := values[models.FieldPhone]; ok {
		values[models.FieldPhone] = utils.NormalizePhone(phone)
	}

	// Validate required fields after masking so "abc" counts as empty
	for _, name := range models.RequiredFields {
		if strings.TrimSpace(values[name]) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
	}

	if !utils.ValidEgyptianPhone(values[models.FieldPhone]) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": h.deps.Messages.InvalidPhone,
			"field": models.FieldPhone,
		})
		return
	}

	form := ui.NewForm(ui.NewButton("", nil), formType.Fields()...)
	for _, name := range formType.Fields() {
		if value, ok := values[name]; ok {
			_ = form.Set(name, value)
		}
	}

	view := &pageView{}
	handler := services.NewLeadSubmissionHandler(h.deps, view, view)

	if err := handler.Submit(c.Request.Context(), form, formType); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status": "error",
			"error":  view.failureText,
			"fields": form.Values(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              "success",
		"showModal":           view.showModal,
		"modalDismissAfterMs": h.dismissDelay.Milliseconds(),
		"fields":              form.Values(),
	})
}

// HandleOfferCountdown reports the time left on the current offer
func (h *Handlers) HandleOfferCountdown(c *gin.Context) {
	if h.offer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active offer"})
		return
	}

	current := h.offer.Current()
	c.JSON(http.StatusOK, gin.H{
		"deadline":  h.offer.Deadline().Format(time.RFC3339),
		"countdown": current,
		"label":     current.Label(h.deps.Messages),
	})
}

// readFields accepts the page's form-encoded/multipart posts as well as JSON bodies
func readFields(c *gin.Context) (map[string]string, error) {
	values := map[string]string{}

	if strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
		if err := c.ShouldBindJSON(&values); err != nil {
			return nil, err
		}
		return values, nil
	}

	for _, name := range models.FormTypeContact.Fields() {
		if v, ok := c.GetPostForm(name); ok {
			values[name] = v
		}
	}
	return values, nil
}
