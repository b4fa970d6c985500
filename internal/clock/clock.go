// Package clock provides cancellable periodic tick sources.
package clock

import (
	"sync"
	"time"
)

// Clock schedules periodic callbacks.
type Clock interface {
	// Every calls fn once per interval until the returned Ticker is stopped.
	Every(interval time.Duration, fn func()) Ticker
}

// Ticker is a handle to a scheduled callback. Stop is idempotent, does not
// block and may be called from inside the callback.
type Ticker interface {
	Stop()
}

// Real is a Clock backed by time.Ticker.
type Real struct{}

// Every implements Clock.
func (Real) Every(interval time.Duration, fn func()) Ticker {
	t := &realTicker{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type realTicker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *realTicker) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

func (t *realTicker) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
