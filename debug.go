package trashdesk

import (
	"log/slog"
	"time"
)

// frameStats holds per-frame timing and state counters.
// Only populated when Scene.debug is true.
type frameStats struct {
	stepTime time.Duration
	icons    int
	held     int
	tweens   int
}

// debugLog writes frame stats at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		slog.Duration("step", stats.stepTime),
		slog.Int("icons", stats.icons),
		slog.Int("held", stats.held),
		slog.Int("tweens", stats.tweens),
	)
}
