// Package request holds small helpers for reading HTTP request context.
package request

import (
	"net/http"
	"strings"
)

// ClientIP extracts the client IP, respecting X-Forwarded-For and
// X-Real-IP set by proxies.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return r.RemoteAddr
}
