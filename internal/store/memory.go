package store

import (
	"context"
	"sync"

	"github.com/verte-zerg/wordrush/internal/model"
)

// Memory is a process-local store used for guest play. Nothing survives exit.
type Memory struct {
	mu   sync.Mutex
	kv   map[string]string
	runs []model.RunStats
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{kv: map[string]string{}}
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.kv[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

// InsertRun appends a finished run.
func (m *Memory) InsertRun(_ context.Context, run model.RunStats) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return int64(len(m.runs)), nil
}

// ListRuns returns the most recent runs in chronological order.
func (m *Memory) ListRuns(_ context.Context, last int) ([]model.RunStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	runs := m.runs
	if last > 0 && len(runs) > last {
		runs = runs[len(runs)-last:]
	}
	return append([]model.RunStats(nil), runs...), nil
}
