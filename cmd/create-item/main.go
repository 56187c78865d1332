// Package main implements the create-item Lambda handler.
package main

import (
	"context"
	"log"

	"inventory-backend/infrastructure/config"
	"inventory-backend/infrastructure/di"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// container holds the dependencies built once per cold start
var container *di.Container

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

func handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return container.InventoryHandler.CreateItem(ctx, req), nil
}

func main() {
	lambda.Start(handle)
}
