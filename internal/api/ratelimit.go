package api

import (
	"net"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/listenupapp/nameflags/internal/errors"
)

// rateLimitRenders limits image rendering per client IP.
// Returns 429 Too Many Requests when limit is exceeded.
func (s *Server) rateLimitRenders(ctx huma.Context, next func(huma.Context)) {
	if s.renderLimiter == nil {
		next(ctx)
		return
	}

	key := clientIP(ctx)
	if !s.renderLimiter.Allow(key) {
		s.logger.Warn("Rate limit exceeded",
			"ip", key,
			"path", ctx.URL().Path,
		)
		ctx.SetHeader("Retry-After", "60")
		msg := "Too many render requests. Please try again later."
		_ = huma.WriteErr(s.api, ctx, http.StatusTooManyRequests, msg, domainerrors.RateLimited(msg))
		return
	}

	next(ctx)
}

// clientIP returns the remote host. middleware.RealIP has already replaced
// the address with X-Forwarded-For or X-Real-IP when present.
func clientIP(ctx huma.Context) string {
	addr := ctx.RemoteAddr()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
