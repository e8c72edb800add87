package config

import (
	"context"
	"fmt"
	"io"

	"github.com/draftea/booking-system/booking-service/application"
	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/booking-service/handlers"
	"github.com/draftea/booking-system/booking-service/infrastructure"
	"github.com/draftea/booking-system/shared/events"
	sharedinfra "github.com/draftea/booking-system/shared/infrastructure"
	"github.com/draftea/booking-system/shared/logger"
	"github.com/draftea/booking-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Telemetry
	Telemetry         *telemetry.Telemetry
	telemetryShutdown func()

	// Saga collaborators
	Ledger       domain.LedgerStore
	Availability domain.AvailabilityClient
	Payments     domain.PaymentClient
	Notifier     domain.Notifier
	Locker       domain.BookingLocker
	Users        domain.UserDirectory

	// Use Cases
	BookingSaga *application.BookingSaga

	// HTTP Handlers
	BookingHandlers *handlers.BookingHandlers

	// Infrastructure
	EventPublisher events.Publisher
	Redis          *redis.Client

	closers []namedCloser
}

type namedCloser struct {
	name   string
	closer io.Closer
}

func BuildDependencies(ctx context.Context, config *Config) (_ *Dependencies, err error) {
	deps := &Dependencies{}
	defer func() {
		if err != nil {
			_ = deps.Close()
		}
	}()

	if config.Telemetry.Enabled {
		tel, shutdown, err := telemetry.InitTelemetry(ctx, telemetry.BookingServiceConfig.
			WithServiceName(config.ServiceName).
			WithOTLPEndpoint(config.Telemetry.OTLPEndpoint))
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize telemetry")
		}
		deps.Telemetry = tel
		deps.telemetryShutdown = shutdown
	}

	if err := deps.buildLedger(ctx, config); err != nil {
		return nil, err
	}

	if err := deps.buildNotifier(ctx, config); err != nil {
		return nil, err
	}

	if err := deps.buildLocker(ctx, config); err != nil {
		return nil, err
	}

	deps.Availability = infrastructure.NewHTTPAvailabilityClient(infrastructure.HTTPAvailabilityConfig{
		BaseURL:  config.EventService.BaseURL,
		Timeout:  config.EventService.Timeout,
		Currency: config.EventService.Currency,
	})

	switch config.Payment.Driver {
	case "http":
		deps.Payments = infrastructure.NewHTTPPaymentProcessor(infrastructure.HTTPPaymentConfig{
			BaseURL: config.Payment.BaseURL,
			Timeout: config.Payment.Timeout,
		})
	default:
		deps.Payments = infrastructure.NewSimulatedPaymentProcessor(config.Payment.DeclineOver)
	}

	deps.Users = infrastructure.NewPatternUserDirectory(config.Users.EmailPattern)

	deps.BookingSaga = application.NewBookingSaga(
		deps.Ledger,
		deps.Availability,
		deps.Payments,
		deps.Notifier,
		deps.Users,
		application.WithLocker(deps.Locker),
	)

	deps.BookingHandlers = handlers.NewBookingHandlers(deps.BookingSaga)

	logger.Get().Info("dependencies ready",
		"ledger", config.Ledger.Driver,
		"notifier", config.Notifier.Driver,
		"locker", config.Locker.Driver,
		"payment", config.Payment.Driver,
	)

	return deps, nil
}

func (d *Dependencies) buildLedger(ctx context.Context, config *Config) error {
	if config.Ledger.Driver == "memory" {
		d.Ledger = infrastructure.NewMemoryLedger()
		return nil
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", config.GetDatabaseURL())
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}

	db.SetMaxOpenConns(config.Database.MaxOpenConns)
	db.SetMaxIdleConns(config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(config.Database.ConnMaxLifetime)

	d.DB = db
	d.closers = append(d.closers, namedCloser{"database", db})
	d.Ledger = infrastructure.NewPostgresLedger(db)
	return nil
}

func (d *Dependencies) buildNotifier(ctx context.Context, config *Config) error {
	n := config.Notifier

	switch n.Driver {
	case "sns":
		awsCfg, err := sharedinfra.LoadAWSConfig(ctx, sharedinfra.AWSConfig{
			Region:          config.AWS.Region,
			AccessKeyID:     config.AWS.AccessKeyID,
			SecretAccessKey: config.AWS.SecretAccessKey,
			EndpointSNS:     config.AWS.EndpointSNS,
		})
		if err != nil {
			return err
		}
		d.EventPublisher = sharedinfra.NewSNSEventPublisher(
			sharedinfra.NewSNSClient(awsCfg, config.AWS.EndpointSNS),
			config.AWS.SNSTopicArn,
		)

	case "rabbitmq":
		publisher, err := sharedinfra.NewRabbitMQPublisher(sharedinfra.RabbitMQConfig{
			URL:        n.RabbitMQ.URL,
			Exchange:   n.RabbitMQ.Exchange,
			Queue:      n.RabbitMQ.Queue,
			BindingKey: n.RabbitMQ.BindingKey,
		})
		if err != nil {
			return err
		}
		d.EventPublisher = publisher
		d.closers = append(d.closers, namedCloser{"rabbitmq publisher", publisher})

	case "kafka":
		publisher, err := sharedinfra.NewKafkaPublisher(n.Kafka.Brokers, n.Kafka.Topic)
		if err != nil {
			return err
		}
		d.EventPublisher = publisher
		d.closers = append(d.closers, namedCloser{"kafka publisher", publisher})

	case "nats":
		publisher, err := sharedinfra.NewNATSPublisher(n.NATS.URL, config.ServiceName, n.NATS.SubjectPrefix)
		if err != nil {
			return err
		}
		d.EventPublisher = publisher
		d.closers = append(d.closers, namedCloser{"nats publisher", publisher})

	default:
		d.EventPublisher = sharedinfra.NewLogPublisher(logger.Get())
	}

	d.Notifier = infrastructure.NewEventNotifier(d.EventPublisher, n.Source)
	return nil
}

func (d *Dependencies) buildLocker(ctx context.Context, config *Config) error {
	switch config.Locker.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.Locker.RedisAddr,
			Password: config.Locker.RedisPassword,
			DB:       config.Locker.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return errors.Wrap(err, "failed to connect to redis")
		}
		d.Redis = client
		d.closers = append(d.closers, namedCloser{"redis", client})
		d.Locker = infrastructure.NewRedisBookingLocker(client, config.Locker.TTL)

	case "memory":
		d.Locker = infrastructure.NewMemoryBookingLocker()

	default:
		// No locker: concurrent Confirm calls are only caught by the ledger version check
		d.Locker = nil
	}

	return nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	for i := len(d.closers) - 1; i >= 0; i-- {
		c := d.closers[i]
		if err := c.closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", c.name, err))
		}
	}
	d.closers = nil

	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
		d.telemetryShutdown = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
