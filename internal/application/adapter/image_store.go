package adapter

import "context"

// ImageStore turns a base64 image payload (optionally carrying a data-URI
// prefix) into a stable relative path that the HTTP layer later rewrites
// into an absolute URL.
type ImageStore interface {
	// Save decodes and persists the payload, returning its relative path.
	Save(ctx context.Context, base64Payload string) (string, error)
}
