package utils

import (
	"context"
	"log"
	"runtime/debug"

	pkglogger "github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
)

// GoSafe runs fn in a goroutine and recovers from panics so a single bad
// task cannot take down the service.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// ShouldContinue reports whether the context is still live, logging when it
// is not so long-running loops exit visibly.
func ShouldContinue(ctx context.Context, logger *pkglogger.Logger) bool {
	select {
	case <-ctx.Done():
		logger.Info("Context cancelled, stopping work")
		return false
	default:
		return true
	}
}
