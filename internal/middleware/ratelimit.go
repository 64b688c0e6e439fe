package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tasktracker/pkg/response"
)

// RateLimit throttles requests per client IP. Intended for the routes that
// fan out to model providers or ffmpeg, which are orders of magnitude more
// expensive than plain CRUD.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := m.limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(m.rlConfig.RequestsPerSecond), m.rlConfig.Burst)
			m.limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s from %s", c.Request.Method, c.Request.URL.Path, ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
