package ratelimit

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
)

const cleanupThreshold = 1000

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client ip. A client may spend Max
// requests at once and regains them over Window.
type Limiter struct {
	window  time.Duration
	max     int
	mu      sync.Mutex
	clients map[string]*client
}

func NewLimiter(rateLimitConfig *config.RateLimitConfig) *Limiter {
	window := rateLimitConfig.Window
	if window <= 0 {
		window = config.DefaultRateLimitWindow
	}
	maxRequests := rateLimitConfig.Max
	if maxRequests <= 0 {
		maxRequests = config.DefaultRateLimitMax
	}

	return &Limiter{
		window:  window,
		max:     maxRequests,
		clients: map[string]*client{},
	}
}

func (l *Limiter) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !l.Allow(ctx.IP()) {
			ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(l.window/time.Duration(l.max)/time.Second)+1))
			return cerror.RateLimited()
		}

		return ctx.Next()
	}
}

func (l *Limiter) Allow(key string) bool {
	return l.get(key).Allow()
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if existing, ok := l.clients[key]; ok {
		existing.lastSeen = now
		return existing.limiter
	}

	l.evictLocked(now)
	created := &client{
		limiter:  rate.NewLimiter(rate.Every(l.window/time.Duration(l.max)), l.max),
		lastSeen: now,
	}
	l.clients[key] = created

	return created.limiter
}

func (l *Limiter) evictLocked(now time.Time) {
	if len(l.clients) < cleanupThreshold {
		return
	}

	cutoff := now.Add(-l.window)
	for key, existing := range l.clients {
		if existing.lastSeen.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}
