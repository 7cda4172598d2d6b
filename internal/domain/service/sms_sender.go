package service

import "context"

// SMSSender delivers a text message to a phone number. The returned message
// ID is the provider's opaque identifier for the delivery attempt.
type SMSSender interface {
	Send(ctx context.Context, to, message string) (messageID string, err error)
}
