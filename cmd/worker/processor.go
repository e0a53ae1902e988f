package main

import (
	"context"
	"encoding/json"
	"fmt"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/masalabox/orderflow/internal/events"
	"github.com/masalabox/orderflow/internal/notify"
)

// Processor consumes order.placed events and sends the customer an order
// confirmation SMS.
type Processor struct {
	sms notify.SMSSender
}

// NewProcessor creates a worker processor with the SMS sender injected.
func NewProcessor(sms notify.SMSSender) *Processor {
	return &Processor{sms: sms}
}

// Handle receives an SQS batch event and processes each message. Returning an
// error makes the Lambda runtime retry the batch; poisoned messages end up in
// the DLQ.
func (p *Processor) Handle(ctx context.Context, ev lambdaevents.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			log.Error().Err(err).Str("message_id", rec.MessageId).Msg("worker: message failed")
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec lambdaevents.SQSMessage) error {
	var ev events.OrderPlaced
	if err := json.Unmarshal([]byte(rec.Body), &ev); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if ev.OrderID == "" {
		return fmt.Errorf("message without order_id: %s", rec.Body)
	}

	if ev.Phone == "" {
		log.Warn().Str("order_id", ev.OrderID).Msg("worker: order has no phone, skipping SMS")
		return nil
	}

	msg := confirmationMessage(ev)
	if err := p.sms.Send(ctx, ev.Phone, msg); err != nil {
		return fmt.Errorf("send confirmation for %s: %w", ev.OrderID, err)
	}

	log.Info().Str("order_id", ev.OrderID).Msg("worker: confirmation sent")
	return nil
}

func confirmationMessage(ev events.OrderPlaced) string {
	if ev.Method == "cash" {
		return fmt.Sprintf("Your order %s of ₹%.2f has been placed. Please keep the amount ready for the delivery partner.", ev.OrderID, ev.FinalTotal)
	}
	return fmt.Sprintf("Your order %s of ₹%.2f has been placed and paid. We will notify you when it is out for delivery.", ev.OrderID, ev.FinalTotal)
}
