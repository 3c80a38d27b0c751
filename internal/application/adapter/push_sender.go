package adapter

import "context"

// PushSender delivers a mobile push message to one device token. Failures
// are per-token; callers collect outcomes without failing the triggering
// operation.
type PushSender interface {
	// Send delivers a title/body pair to the device token.
	Send(ctx context.Context, token, title, body string) error
}
