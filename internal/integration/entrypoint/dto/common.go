// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// AbsoluteImageURL rewrites a stored public path ("/public/uploads/x.png")
// into an absolute URL using the scheme and host of the current request, so
// mobile clients can load images without knowing the server address.
// Paths that are already absolute pass through unchanged.
func AbsoluteImageURL(ctx *gin.Context, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	scheme := "http"
	if proto := ctx.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if ctx.Request.TLS != nil {
		scheme = "https"
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return scheme + "://" + ctx.Request.Host + path
}

// AbsoluteImageURLs applies AbsoluteImageURL to every path in the slice.
func AbsoluteImageURLs(ctx *gin.Context, paths []string) []string {
	if paths == nil {
		return []string{}
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = AbsoluteImageURL(ctx, p)
	}
	return out
}
