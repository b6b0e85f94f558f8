package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streadway/amqp"

	"stylehive/internal/config"
	"stylehive/internal/handlers"
	"stylehive/internal/notify"
	"stylehive/internal/receipt"
	"stylehive/internal/services"
	"stylehive/internal/storage"
	"stylehive/pkg/kafka"
	"stylehive/pkg/rabbitmq"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// --- Client storage ---
	store, storeCloser, err := storage.Open(context.Background(), storage.Config{
		Driver:    cfg.StorageDriver,
		DSN:       cfg.DatabaseDSN,
		RedisAddr: cfg.RedisAddr,
	})
	if err != nil {
		log.Error("failed to open client storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer storeCloser.Close()

	// --- Confirmation delivery ---
	notifier, notifierCloser, err := newNotifier(cfg, log)
	if err != nil {
		log.Error("failed to set up notifier", "notifier", cfg.Notifier, "error", err)
		os.Exit(1)
	}
	defer notifierCloser.Close()

	registry := services.NewRegistry(services.Dependencies{
		Store:    store,
		Verifier: receipt.NewSimulated(cfg.VerifyDelay),
		Notifier: notifier,
		Admin: services.AdminCredential{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
			Name:     services.DefaultAdminCredential.Name,
		},
		VerifyTimeout: cfg.VerifyTimeout,
		Logger:        log,
	})

	app := newApp(services.NewClientTokenService(cfg.JWTSecret), registry, log)

	log.Info("starting server", "port", cfg.AppPort, "storage", cfg.StorageDriver, "notifier", cfg.Notifier)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	log.Info("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("error during fiber shutdown", "error", err)
	}
	log.Info("server gracefully stopped")
}

// newApp builds the Fiber app with the API, health and metrics routes.
func newApp(tokens *services.ClientTokenService, registry *services.Registry, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 8 * 1024 * 1024, // receipt uploads
	})
	app.Use(logger.New())

	handlers.RegisterAPI(app.Group("/api/v1"), tokens, registry, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newNotifier builds the configured confirmation channel. With RabbitMQ the
// service also consumes its own queue and logs each rendered confirmation.
func newNotifier(cfg *config.Config, log *slog.Logger) (notify.Notifier, io.Closer, error) {
	switch cfg.Notifier {
	case "rabbitmq":
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			return nil, nil, err
		}

		mailer := notify.NewLogNotifier(log)
		messageHandler := func(msg amqp.Delivery) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return notify.Deliver(ctx, mailer, msg.Body)
		}
		if err := mqClient.ConsumeOrderEvents(messageHandler); err != nil {
			log.Error("failed to start RabbitMQ consumer", "error", err)
		}
		return notify.NewBrokerNotifier(mqClient), mqClient, nil
	case "kafka":
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		return notify.NewBrokerNotifier(producer), producer, nil
	default:
		return notify.NewLogNotifier(log), nopCloser{}, nil
	}
}
