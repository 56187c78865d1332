package dynamodb

import (
	"context"
	"fmt"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBAPI defines the DynamoDB operations used by the repository.
// This interface allows for easy mocking in tests without requiring actual
// AWS infrastructure.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Verify that the real DynamoDB client implements our interface
var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// Shared client state. The client is constructed on first use and reused for
// the lifetime of the process; there is no teardown.
var (
	sharedOnce   sync.Once
	sharedClient *dynamodb.Client
	sharedErr    error
)

// SharedClient returns the process-wide DynamoDB client, constructing it on
// the first call.
func SharedClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	sharedOnce.Do(func() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
		)
		if err != nil {
			sharedErr = fmt.Errorf("failed to load AWS config: %w", err)
			return
		}
		sharedClient = dynamodb.NewFromConfig(awsCfg)
	})
	return sharedClient, sharedErr
}
