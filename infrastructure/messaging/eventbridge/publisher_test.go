package eventbridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"inventory-backend/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEventBridge struct {
	putEvents func(ctx context.Context, params *eventbridge.PutEventsInput) (*eventbridge.PutEventsOutput, error)
}

func (s *stubEventBridge) PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, _ ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	return s.putEvents(ctx, params)
}

func TestPublish_SendsEntry(t *testing.T) {
	var captured *eventbridge.PutEventsInput
	client := &stubEventBridge{
		putEvents: func(_ context.Context, params *eventbridge.PutEventsInput) (*eventbridge.PutEventsOutput, error) {
			captured = params
			return &eventbridge.PutEventsOutput{}, nil
		},
	}

	publisher := NewEventBridgePublisher(client, "inventory-events", zap.NewNop())
	event := events.NewItemCreated("item-1", "Widget")

	err := publisher.Publish(context.Background(), event)
	require.NoError(t, err)

	require.NotNil(t, captured)
	require.Len(t, captured.Entries, 1)

	entry := captured.Entries[0]
	assert.Equal(t, "inventory-events", aws.ToString(entry.EventBusName))
	assert.Equal(t, events.SourceInventory, aws.ToString(entry.Source))
	assert.Equal(t, "inventory.item_created", aws.ToString(entry.DetailType))

	var detail events.ItemCreated
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(entry.Detail)), &detail))
	assert.Equal(t, "item-1", detail.ItemID)
	assert.Equal(t, "Widget", detail.Name)
}

func TestPublish_ClientError(t *testing.T) {
	client := &stubEventBridge{
		putEvents: func(context.Context, *eventbridge.PutEventsInput) (*eventbridge.PutEventsOutput, error) {
			return nil, errors.New("endpoint unreachable")
		},
	}

	publisher := NewEventBridgePublisher(client, "inventory-events", zap.NewNop())

	err := publisher.Publish(context.Background(), events.NewItemDeleted("item-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestPublish_RejectedEntry(t *testing.T) {
	client := &stubEventBridge{
		putEvents: func(context.Context, *eventbridge.PutEventsInput) (*eventbridge.PutEventsOutput, error) {
			return &eventbridge.PutEventsOutput{
				FailedEntryCount: 1,
				Entries: []types.PutEventsResultEntry{
					{
						ErrorCode:    aws.String("ThrottlingException"),
						ErrorMessage: aws.String("rate exceeded"),
					},
				},
			}, nil
		},
	}

	publisher := NewEventBridgePublisher(client, "inventory-events", zap.NewNop())

	err := publisher.Publish(context.Background(), events.NewItemUpdated("item-1", "Gadget"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}
