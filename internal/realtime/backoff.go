package realtime

import (
	"errors"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

// backoffDelay returns min(base*2^(attempt-1), limit) for attempt >= 1.
func backoffDelay(attempt int, base, limit time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= limit {
			return limit
		}
	}
	if delay > limit {
		return limit
	}
	return delay
}

// classifyClose maps a read or dial error to the reason the connection ended.
func classifyClose(err error) models.CloseReason {
	if errors.Is(err, ErrServerClosed) {
		return models.CloseServerInitiated
	}
	return models.CloseNetworkOrOther
}
