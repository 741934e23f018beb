package middleware

import (
	"ironlady-assistant/pkg/log"
)

type Middleware struct {
	l        log.Logger
	limiters *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:        l,
		limiters: rl,
	}
}
