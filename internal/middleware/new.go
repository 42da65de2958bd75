package middleware

import (
	"furniture-chatbot/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. A non-positive rateLimitPerMin disables
// rate limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	mw := Middleware{l: l}
	if rateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(rateLimitPerMin)
	}
	return mw
}
