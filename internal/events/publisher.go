package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"

	"github.com/masalabox/orderflow/internal/aws"
)

// OrderPlaced is the payload sent from the API to the notification worker
// when an order is persisted.
type OrderPlaced struct {
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Phone      string    `json:"phone"`
	FinalTotal float64   `json:"final_total"`
	Method     string    `json:"method"`
	PlacedAt   time.Time `json:"placed_at"`
}

// Publisher wraps an SQS client and a queue URL. A Publisher with an empty
// queue URL is a no-op, so deployments without the worker still function.
type Publisher struct {
	sqsClient aws.SQSAPI
	queueURL  string
}

// NewPublisher returns a Publisher bound to a queue URL.
func NewPublisher(sqsClient aws.SQSAPI, queueURL string) *Publisher {
	return &Publisher{sqsClient: sqsClient, queueURL: queueURL}
}

// PublishOrderPlaced enqueues the event. Failures are logged and swallowed:
// the order is already persisted and a missed notification must not fail
// the checkout.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, ev OrderPlaced) {
	if p == nil || p.queueURL == "" {
		return
	}
	if err := p.send(ctx, ev); err != nil {
		ev2 := log.Error().Err(err).Str("order_id", ev.OrderID)
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			ev2 = ev2.Str("aws_error", apiErr.ErrorCode())
		}
		ev2.Msg("events: publish order.placed failed")
	}
}

func (p *Publisher) send(ctx context.Context, ev OrderPlaced) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	bodyStr := string(body)
	input := &sqs.SendMessageInput{
		QueueUrl:    &p.queueURL,
		MessageBody: &bodyStr,
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"event_type": {
				DataType:    awsString("String"),
				StringValue: awsString("order.placed"),
			},
			"order_id": {
				DataType:    awsString("String"),
				StringValue: &ev.OrderID,
			},
		},
	}

	if _, err := p.sqsClient.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func awsString(s string) *string { return &s }
