package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"taskboard/config"
	"taskboard/pkg/response"
)

// ownerLimiter keeps one token bucket per caller with auto-cleanup.
type ownerLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newOwnerLimiter(cfg config.RateLimitConfig) *ownerLimiter {
	perSecond := cfg.PerSecond
	if perSecond <= 0 {
		perSecond = 20
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = int(perSecond) * 2
	}
	return &ownerLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (rl *ownerLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles per owner, falling back to client IP before the
// scope middleware has run.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(OwnerHeader)
		if key == "" {
			key = c.ClientIP()
		}
		if !m.limiter.allow(key) {
			response.Error(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
