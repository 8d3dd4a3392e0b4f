package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"dental-leads/pkg/api"
	"dental-leads/pkg/clients/webhook"
	"dental-leads/pkg/clients/whatsapp"
	"dental-leads/pkg/config"
	"dental-leads/pkg/logger"
	"dental-leads/pkg/metrics"
	"dental-leads/pkg/middleware"
	"dental-leads/pkg/services"
	"dental-leads/pkg/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded")
	}

	// Initialize configuration
	cfg := config.LoadConfig()
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Error("invalid LOG_LEVEL, keeping info", err)
	}
	defer logger.Sync()

	if cfg.WebhookURL == "" {
		logger.Fatal("WEBHOOK_URL not set", nil)
	}

	messages := ui.MessagesFor(cfg.Locale)

	// Best-effort lead notifications
	var notifier services.Notifier = services.LogNotifier{Messages: messages}
	if cfg.WhatsAppEnabled() {
		client := whatsapp.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.WhatsAppFrom)
		notifier = services.NewWhatsAppNotifier(client, cfg.WhatsAppTo, messages)
		logger.Info("whatsapp notifications enabled")
	}

	registry := prometheus.NewRegistry()
	leadMetrics := metrics.NewLeadMetrics(registry)

	deps := services.SubmissionDeps{
		Webhook:  webhook.NewClient(cfg.WebhookURL, nil),
		Notifier: notifier,
		Messages: messages,
		Metrics:  leadMetrics,
		Now:      time.Now,
	}

	var offer *services.OfferCountdown
	if deadline, err := cfg.OfferDeadlineTime(); err != nil {
		logger.Error("offer countdown disabled", err)
	} else {
		offer = services.NewOfferCountdown(deadline, time.Now)
	}

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	handlers := api.NewHandlers(deps, offer, cfg.ModalDismissDelay)
	handlers.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("locale", messages.Locale))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("error starting server", err)
	}
}
