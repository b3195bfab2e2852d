package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenLimiter enforces a per-minute token budget, refilling the full
// budget once the minute window elapses.
type TokenLimiter struct {
	mu        sync.Mutex
	limit     int
	remaining int
	resetAt   time.Time
}

// NewTokenLimiter creates a TokenLimiter with the given tokens-per-minute budget.
func NewTokenLimiter(tokensPerMinute int) *TokenLimiter {
	return &TokenLimiter{
		limit:     tokensPerMinute,
		remaining: tokensPerMinute,
		resetAt:   time.Now().Add(time.Minute),
	}
}

// GetRemaining returns the tokens left in the current window.
func (l *TokenLimiter) GetRemaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	return l.remaining
}

// Wait blocks until n tokens are available or the context is cancelled.
func (l *TokenLimiter) Wait(ctx context.Context, n int) error {
	if n > l.limit {
		n = l.limit
	}
	for {
		l.mu.Lock()
		l.refill()
		if l.remaining >= n {
			l.remaining -= n
			l.mu.Unlock()
			return nil
		}
		waitFor := time.Until(l.resetAt)
		l.mu.Unlock()

		if waitFor < time.Second {
			waitFor = time.Second
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitFor):
		}
	}
}

func (l *TokenLimiter) refill() {
	if time.Now().After(l.resetAt) {
		l.remaining = l.limit
		l.resetAt = time.Now().Add(time.Minute)
	}
}
