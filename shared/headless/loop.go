// Package headless drives a simulation at a fixed tick rate without a window.
package headless

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrStopped is returned by Run when Stop ended the loop.
var ErrStopped = errors.New("loop stopped")

// Loop calls a tick function at a fixed rate until the context ends, Stop is
// called, or the tick function reports it is done.
type Loop struct {
	tickRate int
	stopChan chan struct{}
}

func NewLoop(tickRate int) *Loop {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Loop{
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// TickDelta is the simulated time of one tick, in seconds.
func (l *Loop) TickDelta() float64 {
	return 1 / float64(l.tickRate)
}

// Run blocks until tick returns false, ctx is done or Stop is called. It
// returns nil when tick finished the run.
func (l *Loop) Run(ctx context.Context, tick func(n int) bool) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Debug().Int("tick_rate", l.tickRate).Msg("loop started")

	for n := 0; ; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stopChan:
			return ErrStopped
		case <-ticker.C:
			if !tick(n) {
				log.Debug().Int("ticks", n+1).Msg("loop finished")
				return nil
			}
			n++
		}
	}
}

// Stop ends a running loop. It must be called at most once.
func (l *Loop) Stop() {
	close(l.stopChan)
}
