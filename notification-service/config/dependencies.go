package config

import (
	"context"
	"fmt"

	"github.com/draftea/booking-system/notification-service/application"
	"github.com/draftea/booking-system/notification-service/handlers"
	"github.com/draftea/booking-system/notification-service/infrastructure"
	sharedinfra "github.com/draftea/booking-system/shared/infrastructure"
	"github.com/draftea/booking-system/shared/logger"
	"github.com/draftea/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

type Dependencies struct {
	// Database
	Mongo *mongo.Client

	// Telemetry
	Telemetry         *telemetry.Telemetry
	telemetryShutdown func()

	// Repositories
	NotificationStore *infrastructure.MongoNotificationStore

	// Use Cases
	RecordNotification *application.RecordNotification
	ListNotifications  *application.ListNotifications
	ResendUnsent       *application.ResendUnsent

	// Handlers
	NotificationEventHandlers *handlers.NotificationEventHandlers
	NotificationHTTPHandlers  *handlers.NotificationHTTPHandlers

	// Infrastructure
	EventSubscriber *sharedinfra.SQSEventSubscriber
}

func BuildDependencies(ctx context.Context, config *Config) (_ *Dependencies, err error) {
	deps := &Dependencies{}
	defer func() {
		if err != nil {
			_ = deps.Close()
		}
	}()

	if config.Telemetry.Enabled {
		tel, shutdown, err := telemetry.InitTelemetry(ctx, telemetry.NotificationWorkerConfig.
			WithServiceName(config.ServiceName).
			WithOTLPEndpoint(config.Telemetry.OTLPEndpoint))
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize telemetry")
		}
		deps.Telemetry = tel
		deps.telemetryShutdown = shutdown
	}

	client, err := infrastructure.ConnectMongo(ctx, config.Mongo.URI, config.Mongo.ConnectTimeout)
	if err != nil {
		return nil, err
	}
	deps.Mongo = client

	deps.NotificationStore = infrastructure.NewMongoNotificationStore(client.Database(config.Mongo.Database))
	if err := deps.NotificationStore.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	sender := infrastructure.NewChannelSender(
		infrastructure.NewLogEmailSender(logger.Get()),
		infrastructure.NewLogSMSSender(logger.Get()),
	)

	deps.RecordNotification = application.NewRecordNotification(deps.NotificationStore, sender)
	deps.ListNotifications = application.NewListNotifications(deps.NotificationStore)
	deps.ResendUnsent = application.NewResendUnsent(deps.NotificationStore, sender)

	deps.NotificationEventHandlers = handlers.NewNotificationEventHandlers(deps.RecordNotification)
	deps.NotificationHTTPHandlers = handlers.NewNotificationHTTPHandlers(deps.ListNotifications, deps.ResendUnsent)

	awsCfg, err := sharedinfra.LoadAWSConfig(ctx, sharedinfra.AWSConfig{
		Region:          config.AWS.Region,
		AccessKeyID:     config.AWS.AccessKeyID,
		SecretAccessKey: config.AWS.SecretAccessKey,
		EndpointSQS:     config.AWS.EndpointSQS,
	})
	if err != nil {
		return nil, err
	}

	deps.EventSubscriber = sharedinfra.NewSQSEventSubscriber(
		sharedinfra.NewSQSClient(awsCfg, config.AWS.EndpointSQS),
		config.AWS.SQSQueueURL,
		deps.NotificationEventHandlers,
		sharedinfra.WithWorkers(config.Consumer.Workers),
		sharedinfra.WithVisibilityTimeout(config.Consumer.VisibilityTimeout),
		sharedinfra.WithWaitTime(config.Consumer.WaitTimeSeconds),
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.Mongo != nil {
		if err := d.Mongo.Disconnect(context.Background()); err != nil {
			errs = append(errs, fmt.Errorf("failed to disconnect mongo: %w", err))
		}
		d.Mongo = nil
	}

	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
		d.telemetryShutdown = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
