package middleware

import (
	"chat-with-search/config"
	"chat-with-search/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is off
}

// New builds the middlewares from the rate limit config.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxTrackedPeers)
	}
	return mw
}
