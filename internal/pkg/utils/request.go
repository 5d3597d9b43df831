package utils

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
)

// GetClientIP prefers the first X-Forwarded-For hop since the service sits
// behind the API gateway.
func GetClientIP(r *http.Request) string {
	forwarded := r.Header.Get(constvars.HeaderXForwardedFor)
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func GetUserAgent(r *http.Request) string {
	return r.Header.Get(constvars.HeaderUserAgent)
}

func GetSessionFromContext(ctx context.Context) *models.Session {
	if session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session); ok {
		return session
	}
	return nil
}
