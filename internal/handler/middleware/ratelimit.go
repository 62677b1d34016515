package middleware

import (
	"errors"
	"net/http"
	"sync"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter keeps one token bucket per client. Authenticated requests are
// keyed by user id, others by client IP.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters sync.Map
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{limit: rate.Limit(cfg.RPS), burst: cfg.Burst}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.limit <= 0 {
			c.Next()
			return
		}
		if !r.limiterFor(clientKey(c)).Allow() {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) limiterFor(key string) *rate.Limiter {
	if l, ok := r.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}
	l, _ := r.limiters.LoadOrStore(key, rate.NewLimiter(r.limit, r.burst))
	return l.(*rate.Limiter)
}

func clientKey(c *gin.Context) string {
	if id, ok := GetUserID(c); ok {
		return "user:" + id.String()
	}
	return "ip:" + c.ClientIP()
}
