// Package leaderboard keeps the ranked, persisted top runs.
package leaderboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/wordrush/internal/model"
)

const (
	// Key is the storage key of the leaderboard snapshot.
	Key = "leaderboard"
	// MaxEntries caps the number of ranked runs.
	MaxEntries = 5
	// DateLayout formats the entry date label.
	DateLayout = "1/2/2006"
)

// Storage is a durable string-keyed store.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Result is a finished run ready to be ranked.
type Result struct {
	Score      int
	WPM        int
	Accuracy   int
	Difficulty model.Difficulty
	At         time.Time
}

// Leaderboard holds at most MaxEntries entries sorted by descending score.
type Leaderboard struct {
	mu      sync.Mutex
	storage Storage
	log     zerolog.Logger
	entries []model.LeaderboardEntry
	lastID  int64
}

// Load hydrates a leaderboard from storage. Absent or malformed snapshots
// yield an empty board; read failures are logged, never returned.
func Load(ctx context.Context, storage Storage, log zerolog.Logger) *Leaderboard {
	l := &Leaderboard{
		storage: storage,
		log:     log.With().Str("component", "leaderboard").Logger(),
	}
	raw, ok, err := storage.Get(ctx, Key)
	if err != nil {
		l.log.Warn().Err(err).Msg("failed to read leaderboard, starting empty")
		return l
	}
	if !ok {
		return l
	}
	entries, err := decode(raw)
	if err != nil {
		l.log.Warn().Err(err).Msg("discarding malformed leaderboard snapshot")
		return l
	}
	l.entries = rank(entries)
	for _, e := range entries {
		if e.ID > l.lastID {
			l.lastID = e.ID
		}
	}
	return l
}

// Entries returns a copy of the ranked entries.
func (l *Leaderboard) Entries() []model.LeaderboardEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.LeaderboardEntry(nil), l.entries...)
}

// Record ranks a finished run and persists the board. The created entry is
// returned even when it did not make the cut or the write failed.
func (l *Leaderboard) Record(ctx context.Context, r Result) model.LeaderboardEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := r.At.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	entry := model.LeaderboardEntry{
		ID:         id,
		Score:      r.Score,
		WPM:        r.WPM,
		Accuracy:   r.Accuracy,
		Difficulty: r.Difficulty,
		Date:       r.At.Format(DateLayout),
	}
	updated := make([]model.LeaderboardEntry, 0, len(l.entries)+1)
	updated = append(updated, l.entries...)
	updated = append(updated, entry)
	l.entries = rank(updated)
	l.persist(ctx)
	return entry
}

func (l *Leaderboard) persist(ctx context.Context) {
	raw, err := encode(l.entries)
	if err != nil {
		l.log.Warn().Err(err).Msg("failed to encode leaderboard")
		return
	}
	if err := l.storage.Set(ctx, Key, raw); err != nil {
		l.log.Warn().Err(err).Msg("failed to save leaderboard")
	}
}

// rank sorts by descending score, keeping insertion order among ties, and
// keeps the top MaxEntries.
func rank(entries []model.LeaderboardEntry) []model.LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}
