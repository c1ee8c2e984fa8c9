package bootstrap

import (
	"context"
	"fmt"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/config"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	authHandler "github.com/GanonMaor/spectra-salon-website-sub004/internal/auth/handler"
	authProcessor "github.com/GanonMaor/spectra-salon-website-sub004/internal/auth/processor"
	billingHandler "github.com/GanonMaor/spectra-salon-website-sub004/internal/billing/handler"
	billingProcessor "github.com/GanonMaor/spectra-salon-website-sub004/internal/billing/processor"
	kafkaClient "github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/kafka"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/mail"
	redisClient "github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/redis"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/sumit"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/turnstile"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/whatsapp"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/events"
	funnelHandler "github.com/GanonMaor/spectra-salon-website-sub004/internal/funnel/handler"
	funnelProcessor "github.com/GanonMaor/spectra-salon-website-sub004/internal/funnel/processor"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/jobs"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/notify"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/ratelimit"
	supportHandler "github.com/GanonMaor/spectra-salon-website-sub004/internal/support/handler"
	supportProcessor "github.com/GanonMaor/spectra-salon-website-sub004/internal/support/processor"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/support/stream"

	"github.com/hibiken/asynq"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler    authHandler.Handler
	FunnelHandler  funnelHandler.Handler
	BillingHandler billingHandler.Handler
	SupportHandler supportHandler.Handler

	// Shared services
	RateLimiter *ratelimit.Service
	SupportHub  *stream.Hub

	// Clients (for cleanup)
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer
	JobClient     *jobs.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Server.AutoMigrate {
		if err := deps.Store.MigrateUp(ctx); err != nil {
			deps.Cleanup()
			return nil, err
		}
		logger.Info(ctx, "Database migrations applied")
	}

	// Redis backs the throttle and the job queue. Both degrade when it is off.
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.WarnWithError(ctx, "Redis unavailable, throttling falls back to PostgreSQL", err)
		deps.RedisClient = nil
	}
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, &deps.Store, cfg.Throttle, logger)

	// Initialize Kafka producer
	if cfg.Kafka.Enabled() {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.BrokerList(),
			Topic:   cfg.Kafka.Topic,
		}, logger)
	} else {
		logger.Info(ctx, "Kafka is not configured, domain events are dropped")
	}
	publisher := events.NewPublisher(deps.KafkaProducer, logger)

	// Initialize outbound clients
	mailClient := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
	whatsappClient := whatsapp.NewClient(
		cfg.Services.TwilioAccountSID,
		cfg.Services.TwilioAuthToken,
		cfg.Services.TwilioWhatsAppFrom,
		logger,
	)
	sumitClient := sumit.NewClient(
		cfg.Services.SumitBaseURL,
		cfg.Services.SumitCompanyID,
		cfg.Services.SumitAPIKey,
		logger,
	)
	turnstileClient := turnstile.NewClient(cfg.Services.TurnstileSecretKey, logger)

	// Notifications go through the asynq queue when Redis is available and
	// are sent from the request otherwise.
	var dispatcher notify.Dispatcher
	if cfg.Redis.Enabled {
		deps.JobClient = jobs.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		dispatcher = deps.JobClient
	} else {
		dispatcher = notify.NewInlineDispatcher(mailClient, whatsappClient, logger)
	}
	notifier := notify.NewNotifier(dispatcher, cfg.Services.SupportInboxEmail, cfg.Services.WebAppURI, logger)

	// Initialize funnel processor and handler
	funnelProc := funnelProcessor.New(&deps.Store, publisher, logger)
	deps.FunnelHandler = funnelHandler.New(&funnelProc, logger)

	// Initialize billing processor and handler
	billingProc := billingProcessor.New(
		&deps.Store,
		sumitClient,
		publisher,
		notifier,
		cfg.Plans,
		cfg.Services.SumitWebhookSecret,
		logger,
	)
	deps.BillingHandler = billingHandler.New(&billingProc, logger)

	// Initialize support processor, live stream and handler
	deps.SupportHub = stream.NewHub(logger)
	supportProc := supportProcessor.New(
		&deps.Store,
		turnstileClient,
		deps.RateLimiter,
		whatsappClient,
		notifier,
		publisher,
		deps.SupportHub,
		logger,
	)
	deps.SupportHandler = supportHandler.New(&supportProc, deps.SupportHub, cfg.Services.PublicBaseURL, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(&authProc, cfg.Auth.InternalAPIKey, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.JobClient != nil {
		d.JobClient.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
	d.Store.Close()
}
