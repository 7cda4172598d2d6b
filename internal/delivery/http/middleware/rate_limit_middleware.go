package middleware

import (
	"net/http"
	"sync"
	"time"

	"ayurfresh/config"
	"ayurfresh/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// visitor tracks one client's limiter and its last activity for eviction.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

// NewRateLimitMiddleware creates the per-IP limiter. A background sweep
// evicts idle clients so the map does not grow without bound.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(cfg.RateLimit.Rate),
		burst:    cfg.RateLimit.Burst,
	}

	go m.cleanupLoop()

	return m
}

// Limit rejects requests over the per-IP allowance with a 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", "")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.rate, m.burst)}
		m.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

func (m *RateLimitMiddleware) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		for ip, v := range m.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(m.visitors, ip)
			}
		}
		m.mu.Unlock()
	}
}
