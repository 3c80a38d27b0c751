package adapters

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/adapter"
)

// extByMIME maps data-URI image types to file extensions.
var extByMIME = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// localImageStore writes base64 image payloads to a local directory served
// under a public URL path.
type localImageStore struct {
	dir        string
	publicPath string
}

// NewLocalImageStore creates the store, ensuring the upload directory exists.
func NewLocalImageStore(dir, publicPath string) (adapter.ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localImageStore{dir: dir, publicPath: publicPath}, nil
}

// Save decodes the payload and writes it under a random name. The payload
// may carry a "data:image/png;base64," prefix; without one the image is
// assumed to be PNG.
func (s *localImageStore) Save(_ context.Context, base64Payload string) (string, error) {
	ext := ".png"
	payload := base64Payload

	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("malformed data URI")
		}
		meta := strings.TrimPrefix(parts[0], "data:")
		meta = strings.TrimSuffix(meta, ";base64")
		if e, ok := extByMIME[meta]; ok {
			ext = e
		}
		payload = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode image payload: %w", err)
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return s.publicPath + "/" + name, nil
}
