package ratelimiter

import (
	"sync"
	"time"

	"github.com/almrmi/serramenti/internal/config"
	"github.com/almrmi/serramenti/internal/util"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger()
	}

	return &FixedWindowRateLimiter{
		cfg:     cfg,
		logger:  logger,
		clients: make(map[string]*window),
	}
}

type window struct {
	count    int
	resetsAt time.Time
}

// FixedWindowRateLimiter counts requests per client key within a fixed time
// frame; the count resets when the frame rolls over.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	cfg     config.RateLimiterConfig
	logger  *zap.SugaredLogger
	clients map[string]*window
}

// Allow reports whether the client may proceed, and when to retry if not.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.clients[key]
	if !ok || now.After(w.resetsAt) {
		rl.clients[key] = &window{count: 1, resetsAt: now.Add(rl.cfg.TimeFrame)}
		return true, 0
	}

	if w.count >= rl.cfg.RequestsPerTimeFrame {
		rl.logger.Debugf("Rate limit exceeded for %s, resets in %s", key, time.Until(w.resetsAt))
		return false, time.Until(w.resetsAt)
	}

	w.count++
	return true, 0
}
