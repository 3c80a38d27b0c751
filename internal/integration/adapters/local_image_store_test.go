package adapters

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir, "/public/uploads")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	raw := []byte("fake image bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("stores a bare base64 payload as png", func(t *testing.T) {
		path, err := store.Save(context.Background(), encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(path, "/public/uploads/") || !strings.HasSuffix(path, ".png") {
			t.Errorf("unexpected path %q", path)
		}

		data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
		if err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
		if string(data) != string(raw) {
			t.Error("stored bytes do not match the payload")
		}
	})

	t.Run("honors the data-URI mime type", func(t *testing.T) {
		path, err := store.Save(context.Background(), "data:image/jpeg;base64,"+encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(path, ".jpg") {
			t.Errorf("expected a .jpg path, got %q", path)
		}
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		if _, err := store.Save(context.Background(), "not-base64!!"); err == nil {
			t.Error("expected an error for invalid base64")
		}
	})
}
