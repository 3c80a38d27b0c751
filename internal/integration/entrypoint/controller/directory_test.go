package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

func newDirectoryTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewDirectoryController(nil, nil, nil, nil, nil, nil)

	engine := gin.New()
	engine.GET("/warga/:id", c.Get)
	engine.PATCH("/warga/:id/status", c.SetMonthStatus)
	engine.PATCH("/warga/:id/alamat", c.UpdateAddress)
	return engine
}

func TestDirectoryController_InvalidRequestCode(t *testing.T) {
	engine := newDirectoryTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"bad id on get", http.MethodGet, "/warga/not-a-uuid", ""},
		{"bad id on status update", http.MethodPatch, "/warga/not-a-uuid/status", `{"month":"July","paid":true}`},
		{"bad id on address update", http.MethodPatch, "/warga/not-a-uuid/alamat", `{"alamat":"Jl. Melati 3"}`},
		{"malformed status body", http.MethodPatch, "/warga/0d4ce9a0-0000-4000-8000-000000000001/status", `{`},
		{"malformed address body", http.MethodPatch, "/warga/0d4ce9a0-0000-4000-8000-000000000001/alamat", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			want := string(domainerror.ErrCodeInvalidDirectoryRequest)
			if !strings.Contains(w.Body.String(), want) {
				t.Errorf("expected error code %s, got %s", want, w.Body.String())
			}
		})
	}
}
