// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/doniphane/clickandship/internal/config"
)

// clientTTL is how long an idle IP keeps its limiter before the
// eviction loop drops it.
const clientTTL = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	clients map[string]*client
	mtx     sync.Mutex
	rate    rate.Limit
	burst   int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		rate:    r,
		burst:   b,
	}

	go rl.evictIdle()

	return rl
}

func (rl *RateLimiter) evictIdle() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, c := range rl.clients {
			if time.Since(c.lastSeen) > clientTTL {
				delete(rl.clients, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	c, exists := rl.clients[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.clients[ip] = &client{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GeneralRateLimit admits cfg.GeneralPerSecond requests per second per IP,
// with the same figure as burst headroom.
func GeneralRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return NewRateLimiter(rate.Limit(cfg.GeneralPerSecond), cfg.GeneralPerSecond).Middleware()
}

// AuthRateLimit throttles credential endpoints to cfg.AuthPerMinute
// attempts per IP per minute.
func AuthRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return NewRateLimiter(rate.Every(time.Minute/time.Duration(cfg.AuthPerMinute)), cfg.AuthPerMinute).Middleware()
}

// UploadRateLimit caps image uploads at cfg.UploadPerMinute per IP per minute.
func UploadRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return NewRateLimiter(rate.Every(time.Minute/time.Duration(cfg.UploadPerMinute)), cfg.UploadPerMinute).Middleware()
}
