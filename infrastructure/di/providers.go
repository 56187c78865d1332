package di

import (
	"context"
	"fmt"

	"inventory-backend/application/ports"
	"inventory-backend/infrastructure/config"
	"inventory-backend/infrastructure/messaging/eventbridge"
	dynamodbstore "inventory-backend/infrastructure/persistence/dynamodb"
	lambdahandlers "inventory-backend/interfaces/lambda/handlers"
	"inventory-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *zap.Logger
	Repository       ports.InventoryRepository
	EventBus         ports.EventBus
	Metrics          *observability.Metrics
	InventoryHandler *lambdahandlers.InventoryHandler
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient returns the process-wide DynamoDB client
func ProvideDynamoDBClient(ctx context.Context, cfg *config.Config) (*awsdynamodb.Client, error) {
	return dynamodbstore.SharedClient(ctx, cfg.AWSRegion)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideInventoryRepository creates the inventory repository
func ProvideInventoryRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.InventoryRepository {
	return dynamodbstore.NewInventoryRepository(
		client,
		cfg.InventoryTable,
		cfg.IndexName,
		logger,
	)
}

// ProvideEventBus creates the event bus, or nil when events are disabled
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	if !cfg.EnableEvents {
		return nil
	}
	return eventbridge.NewEventBridgePublisher(
		client,
		cfg.EventBusName,
		logger,
	)
}

// ProvideMetrics creates the metrics instance; without the metrics flag it
// carries no client and every recording call is a no-op
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := fmt.Sprintf("Inventory/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		return observability.NewMetrics(namespace, nil, logger)
	}
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideInventoryHandler creates the envelope handlers
func ProvideInventoryHandler(
	repo ports.InventoryRepository,
	bus ports.EventBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *lambdahandlers.InventoryHandler {
	return lambdahandlers.NewInventoryHandler(repo, bus, metrics, logger)
}
