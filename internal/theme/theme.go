// Package theme holds the persisted light/dark preference.
package theme

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Mode is a theme token.
type Mode string

// Supported modes.
const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Default is used when nothing valid is stored.
const Default = Light

// Key is the storage key of the preference.
const Key = "theme"

// Storage is a durable string-keyed store.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Parse maps a stored token to a Mode. Unknown tokens report false.
func Parse(s string) (Mode, bool) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), true
	default:
		return Default, false
	}
}

// Holder owns the current preference.
type Holder struct {
	mu      sync.Mutex
	storage Storage
	log     zerolog.Logger
	mode    Mode
}

// Load hydrates the preference from storage, falling back to Default.
func Load(ctx context.Context, storage Storage, log zerolog.Logger) *Holder {
	h := &Holder{
		storage: storage,
		log:     log.With().Str("component", "theme").Logger(),
		mode:    Default,
	}
	raw, ok, err := storage.Get(ctx, Key)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to read theme preference")
		return h
	}
	if !ok {
		return h
	}
	mode, valid := Parse(raw)
	if !valid {
		h.log.Debug().Str("value", raw).Msg("ignoring unknown theme preference")
	}
	h.mode = mode
	return h
}

// Current returns the active mode.
func (h *Holder) Current() Mode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mode
}

// Toggle flips between light and dark and persists the result.
// A failed write keeps the in-memory change.
func (h *Holder) Toggle(ctx context.Context) Mode {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.mode == Light {
		h.mode = Dark
	} else {
		h.mode = Light
	}
	if err := h.storage.Set(ctx, Key, string(h.mode)); err != nil {
		h.log.Warn().Err(err).Msg("failed to save theme preference")
	}
	return h.mode
}
