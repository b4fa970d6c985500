package clock

import (
	"sync"
	"time"
)

// Manual is a Clock whose ticks are delivered synchronously by Advance.
type Manual struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

// NewManual returns an idle manual clock.
func NewManual() *Manual {
	return &Manual{}
}

// Every implements Clock. The interval is ignored; each Advance step is one tick.
func (m *Manual) Every(_ time.Duration, fn func()) Ticker {
	t := &manualTicker{fn: fn}
	m.mu.Lock()
	m.tickers = append(m.tickers, t)
	m.mu.Unlock()
	return t
}

// Advance fires n ticks on every live ticker.
func (m *Manual) Advance(n int) {
	for i := 0; i < n; i++ {
		for _, t := range m.live() {
			t.fire()
		}
	}
}

// Active reports how many tickers have not been stopped.
func (m *Manual) Active() int {
	return len(m.live())
}

// FireStopped delivers one tick to tickers that were already stopped,
// simulating a tick racing with cancellation.
func (m *Manual) FireStopped() {
	m.mu.Lock()
	tickers := append([]*manualTicker(nil), m.tickers...)
	m.mu.Unlock()
	for _, t := range tickers {
		if t.isStopped() {
			t.fn()
		}
	}
}

func (m *Manual) live() []*manualTicker {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*manualTicker, 0, len(m.tickers))
	for _, t := range m.tickers {
		if !t.isStopped() {
			out = append(out, t)
		}
	}
	return out
}

type manualTicker struct {
	mu      sync.Mutex
	fn      func()
	stopped bool
}

func (t *manualTicker) fire() {
	if t.isStopped() {
		return
	}
	t.fn()
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (t *manualTicker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}
