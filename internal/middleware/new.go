package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"tasktracker/pkg/log"
)

// RateLimitConfig bounds how often a client may hit the AI routes.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type Middleware struct {
	l        log.Logger
	rlConfig RateLimitConfig

	// One limiter per client IP, expired after idle time so the table
	// cannot grow unbounded.
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, rlConfig RateLimitConfig) Middleware {
	if rlConfig.RequestsPerSecond <= 0 {
		rlConfig.RequestsPerSecond = 1
	}
	if rlConfig.Burst <= 0 {
		rlConfig.Burst = 3
	}
	return Middleware{
		l:        l,
		rlConfig: rlConfig,
		limiters: expirable.NewLRU[string, *rate.Limiter](1024, nil, 10*time.Minute),
	}
}
