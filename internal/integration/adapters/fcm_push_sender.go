package adapters

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/iuran-warga/backend/config"
	"github.com/iuran-warga/backend/internal/application/adapter"
)

// fcmPushSender delivers push messages through the FCM legacy HTTP API.
type fcmPushSender struct {
	client   *resty.Client
	endpoint string
}

// fcmMessage is the legacy FCM send payload.
type fcmMessage struct {
	To           string          `json:"to"`
	Notification fcmNotification `json:"notification"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewFCMPushSender creates a push sender backed by FCM. When push is
// disabled in the config a no-op sender is returned instead.
func NewFCMPushSender(cfg *config.PushConfig) adapter.PushSender {
	if !cfg.Enabled {
		return &noopPushSender{}
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", "key="+cfg.ServerKey).
		SetHeader("Content-Type", "application/json")

	return &fcmPushSender{
		client:   client,
		endpoint: cfg.Endpoint,
	}
}

// Send delivers a title/body pair to one device token.
func (s *fcmPushSender) Send(ctx context.Context, token, title, body string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(fcmMessage{
			To: token,
			Notification: fcmNotification{
				Title: title,
				Body:  body,
			},
		}).
		Post(s.endpoint)
	if err != nil {
		return fmt.Errorf("fcm request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("fcm responded %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// noopPushSender swallows pushes when FCM is not configured.
type noopPushSender struct{}

func (s *noopPushSender) Send(context.Context, string, string, string) error {
	return nil
}
