package middlewares

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LocalRateLimiter is the in-process token bucket used when no Redis is
// configured. Limits are per key and per process.
type LocalRateLimiter struct {
	keyFn KeyFunc
	limit rate.Limit
	burst int
	idle  time.Duration

	mu      sync.Mutex
	clients map[string]*localClient
}

type localClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLocalRateLimiter(ratePerSecond float64, burst int, keyFn KeyFunc) *LocalRateLimiter {
	return &LocalRateLimiter{
		keyFn:   keyFn,
		limit:   rate.Limit(ratePerSecond),
		burst:   burst,
		idle:    3 * time.Minute,
		clients: make(map[string]*localClient),
	}
}

// Run evicts idle keys every minute until ctx is done.
func (l *LocalRateLimiter) Run(ctx context.Context) {
	tk := time.NewTicker(time.Minute)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tk.C:
			l.evict(now)
		}
	}
}

func (l *LocalRateLimiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, c := range l.clients {
		if now.Sub(c.lastSeen) > l.idle {
			delete(l.clients, k)
		}
	}
}

func (l *LocalRateLimiter) reserve(key string, now time.Time) (allowed bool, remaining int, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &localClient{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	if c.limiter.AllowN(now, 1) {
		return true, int(c.limiter.TokensAt(now)), 0
	}
	r := c.limiter.ReserveN(now, 1)
	retryAfter = r.DelayFrom(now)
	r.CancelAt(now)
	return false, 0, retryAfter
}

func (l *LocalRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.keyFn(r)
		allowed, remaining, retryAfter := l.reserve(key, time.Now())

		w.Header().Set("X-RateLimit-Policy", "token-bucket-local")
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.burst))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, remaining)))

		if !allowed {
			sec := int64((retryAfter + time.Second - 1) / time.Second)
			log.Printf("[LocalLimiter] Blocked request from %s (key=%s). Retry after %ds\n", r.RemoteAddr, key, sec)
			tooManyRequests(w, sec)
			return
		}
		next.ServeHTTP(w, r)
	})
}
