package dynamodb

import (
	"context"
	"time"

	"inventory-backend/application/ports"
	"inventory-backend/domain/inventory"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryRepository implements the InventoryRepository port using DynamoDB.
//
// Store failures never propagate: every operation logs the error and returns
// the absent result instead, so callers see "not found" and "store error" as
// the same outcome.
type InventoryRepository struct {
	client    DynamoDBAPI
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(client DynamoDBAPI, tableName, indexName string, logger *zap.Logger) ports.InventoryRepository {
	return &InventoryRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// List scans the name+createdAt index for items whose name contains
// search.Name as a substring. An empty substring matches every item. On any
// store failure the error is logged and an empty slice returned.
func (r *InventoryRepository) List(ctx context.Context, search inventory.ItemSearch) []inventory.Item {
	items := []inventory.Item{}

	filter := expression.Contains(expression.Name("name"), search.Name)
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		r.logger.Error("Failed to build scan filter",
			zap.String("name", search.Name),
			zap.Error(err),
		)
		return items
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.indexName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Scan(ctx, input)
	if err != nil {
		r.logger.Error("Failed to scan inventory table",
			zap.String("name", search.Name),
			zap.Error(err),
		)
		return items
	}

	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		r.logger.Error("Failed to unmarshal inventory items", zap.Error(err))
		return []inventory.Item{}
	}

	return items
}

// Get performs a point lookup by primary key. It returns nil both when the
// item does not exist and when the store call fails (logged).
func (r *InventoryRepository) Get(ctx context.Context, search inventory.ItemSearch) *inventory.Item {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: search.ID},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		r.logger.Error("Failed to get inventory item",
			zap.String("id", search.ID),
			zap.Error(err),
		)
		return nil
	}

	if len(result.Item) == 0 {
		return nil
	}

	var item inventory.Item
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		r.logger.Error("Failed to unmarshal inventory item",
			zap.String("id", search.ID),
			zap.Error(err),
		)
		return nil
	}

	return &item
}

// Create writes the full record unconditionally with a generated id and a
// MM-DD-YYYY createdAt stamp. Duplicate-name checking is the caller's job.
// Returns the generated id, or "" when the write failed (logged).
func (r *InventoryRepository) Create(ctx context.Context, item inventory.Item) string {
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now().Format(inventory.CreatedAtLayout)

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		r.logger.Error("Failed to marshal inventory item",
			zap.String("name", item.Name),
			zap.Error(err),
		)
		return ""
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to create inventory item",
			zap.String("id", item.ID),
			zap.String("name", item.Name),
			zap.Error(err),
		)
		return ""
	}

	return item.ID
}

// Update overwrites name, quantity and unitPrice of the record keyed by id.
// createdAt is never part of the update expression. Returns the id echoed
// back, or "" when the write failed (logged).
func (r *InventoryRepository) Update(ctx context.Context, id string, item inventory.Item) string {
	update := expression.
		Set(expression.Name("name"), expression.Value(item.Name)).
		Set(expression.Name("quantity"), expression.Value(item.Quantity)).
		Set(expression.Name("unitPrice"), expression.Value(item.UnitPrice))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		r.logger.Error("Failed to build update expression",
			zap.String("id", id),
			zap.Error(err),
		)
		return ""
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if _, err := r.client.UpdateItem(ctx, input); err != nil {
		r.logger.Error("Failed to update inventory item",
			zap.String("id", id),
			zap.Error(err),
		)
		return ""
	}

	return id
}

// Delete removes the record keyed by id unconditionally. Returns the id
// echoed back, or "" when the delete failed (logged).
func (r *InventoryRepository) Delete(ctx context.Context, id string) string {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		r.logger.Error("Failed to delete inventory item",
			zap.String("id", id),
			zap.Error(err),
		)
		return ""
	}

	return id
}
