package middleware

import (
	"net/http"
	"sync"
	"time"

	"refreshing-booking/internal/handler/httperr"
	"refreshing-booking/internal/pkg/clock"
	"refreshing-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	rateLimitedMessage = "För många förfrågningar, försök igen om en stund"

	// clients idle this long are forgotten; a refilled bucket is the same as
	// a fresh one
	limiterIdleTTL = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	lastSweep time.Time
	idleTTL   time.Duration
	every     rate.Limit
	burst     int
	clock     clock.Clock
	logger    *zap.Logger
}

func NewRateLimiter(cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		idleTTL:  limiterIdleTTL,
		every:    rate.Inf,
		burst:    cfg.Burst,
		clock:    clock.NewRealClock(),
		logger:   logger,
	}
	if rl.burst < 1 {
		rl.burst = 1
	}
	if cfg.Enabled() {
		interval := time.Minute / time.Duration(cfg.PerMinute)
		rl.every = rate.Every(interval)
		// never forget a client before its bucket could have refilled
		rl.idleTTL = max(limiterIdleTTL, time.Duration(rl.burst)*interval)
	}
	return rl
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.sweep(now)
	}

	e, ok := rl.limiters[ip]
	if !ok {
		e = &clientLimiter{limiter: rate.NewLimiter(rl.every, rl.burst)}
		rl.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

// sweep drops idle clients. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for ip, e := range rl.limiters {
		if now.Sub(e.lastSeen) >= rl.idleTTL {
			delete(rl.limiters, ip)
		}
	}
	rl.lastSweep = now
}

// Middleware limits requests per client IP. Preflight requests are not
// counted.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !rl.limiter(ip).Allow() {
			GetLogger(c, rl.logger).Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.Response{
				Status: http.StatusTooManyRequests,
				Error:  rateLimitedMessage,
			})
			return
		}
		c.Next()
	}
}
