package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/mail"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/whatsapp"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/config"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/jobs"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/jobs/workers"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.Redis.Enabled {
		log.Fatal("REDIS_HOST is not set; notifications are delivered inline by the API")
	}

	logger.Info(ctx, "Starting notification worker...")

	mailClient := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
	whatsappClient := whatsapp.NewClient(
		cfg.Services.TwilioAccountSID,
		cfg.Services.TwilioAuthToken,
		cfg.Services.TwilioWhatsAppFrom,
		logger,
	)
	notificationWorker := workers.NewNotificationWorker(mailClient, whatsappClient, logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				jobs.QueueHigh: 6,
				jobs.QueueLow:  2,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed: %v", task.Type(), err), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	notificationWorker.Register(mux)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", redisOpt.Addr))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
