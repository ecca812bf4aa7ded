package middlewares

import (
	"testing"
	"time"
)

func TestLocalRateLimiter_Evict(t *testing.T) {
	lim := NewLocalRateLimiter(1, 1, PerIPKey("rl"))
	now := time.Now()

	lim.reserve("old", now.Add(-5*time.Minute))
	lim.reserve("fresh", now)
	lim.evict(now)

	if _, ok := lim.clients["old"]; ok {
		t.Error("Expected idle key to be evicted")
	}
	if _, ok := lim.clients["fresh"]; !ok {
		t.Error("Expected recent key to survive")
	}
}
