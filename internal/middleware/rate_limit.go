package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleTTL is how long a client's limiter is kept after its last request.
// It must be at least the window so an idle client cannot reset its budget early.
const idleTTL = 3 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter bounds the request rate per client address using one token
// bucket per address.
type RateLimiter struct {
	perMinute int
	limit     rate.Limit

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows perMinute requests per minute per client address,
// with bursts up to the same amount.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		perMinute: perMinute,
		limit:     rate.Every(time.Minute / time.Duration(perMinute)),
		clients:   make(map[string]*clientLimiter),
		now:       time.Now,
	}
}

// Middleware rejects requests over budget with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := rl.now()
		limiter := rl.limiterFor(c.ClientIP(), now)

		reservation := limiter.ReserveN(now, 1)
		if delay := reservation.DelayFrom(now); delay > 0 {
			reservation.CancelAt(now)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limited",
				"message": fmt.Sprintf("Rate limit exceeded: %d per 1 minute", rl.perMinute),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) limiterFor(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > idleTTL {
		for k, cl := range rl.clients {
			if now.Sub(cl.lastSeen) > idleTTL {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.perMinute)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// Len returns the number of tracked client addresses
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}
