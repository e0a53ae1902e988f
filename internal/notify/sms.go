package notify

import (
	"context"

	"github.com/rs/zerolog/log"
)

// SMSSender delivers a short text message to a mobile number. The production
// deployment plugs in a real SMS provider; LogSender is the development
// stand-in.
type SMSSender interface {
	Send(ctx context.Context, mobile, message string) error
}

// LogSender writes messages to the log instead of sending them.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, mobile, message string) error {
	log.Info().Str("mobile", mobile).Str("message", message).Msg("sms (dev): not sent")
	return nil
}
