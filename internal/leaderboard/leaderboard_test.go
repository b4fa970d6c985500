package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/store"
)

type failingStorage struct {
	sets int
}

func (f *failingStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func (f *failingStorage) Set(context.Context, string, string) error {
	f.sets++
	return errors.New("disk on fire")
}

var baseTime = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func result(score int, offset time.Duration) Result {
	return Result{Score: score, WPM: score * 3, Accuracy: 90, Difficulty: model.Medium, At: baseTime.Add(offset)}
}

func scores(entries []model.LeaderboardEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestRecordKeepsTopFiveDescending(t *testing.T) {
	ctx := context.Background()
	board := Load(ctx, store.NewMemory(), zerolog.Nop())

	for i, score := range []int{3, 9, 1, 7, 5, 8, 2} {
		board.Record(ctx, result(score, time.Duration(i)*time.Second))
		require.LessOrEqual(t, len(board.Entries()), MaxEntries)
	}
	if diff := cmp.Diff([]int{9, 8, 7, 5, 3}, scores(board.Entries())); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}
}

func TestRecordBreaksTiesByInsertionOrder(t *testing.T) {
	ctx := context.Background()
	board := Load(ctx, store.NewMemory(), zerolog.Nop())

	first := board.Record(ctx, result(4, 0))
	second := board.Record(ctx, result(4, time.Second))
	board.Record(ctx, result(6, 2*time.Second))

	entries := board.Entries()
	require.Equal(t, []int{6, 4, 4}, scores(entries))
	require.Equal(t, first.ID, entries[1].ID)
	require.Equal(t, second.ID, entries[2].ID)
}

func TestRecordAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	board := Load(ctx, store.NewMemory(), zerolog.Nop())

	a := board.Record(ctx, result(1, 0))
	b := board.Record(ctx, result(1, 0))
	require.Equal(t, baseTime.UnixMilli(), a.ID)
	require.Greater(t, b.ID, a.ID)
	require.Equal(t, "10/19/2026", a.Date)
}

func TestRecordPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	board := Load(ctx, mem, zerolog.Nop())
	board.Record(ctx, result(2, 0))
	board.Record(ctx, result(5, time.Second))

	raw, ok, err := mem.Get(ctx, Key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, raw, `"difficulty":"medium"`)
	require.Contains(t, raw, `"date":"10/19/2026"`)

	reloaded := Load(ctx, mem, zerolog.Nop())
	if diff := cmp.Diff(board.Entries(), reloaded.Entries()); diff != "" {
		t.Fatalf("reloaded board differs (-want +got):\n%s", diff)
	}

	next := reloaded.Record(ctx, result(1, -time.Hour))
	require.Greater(t, next.ID, board.Entries()[0].ID)
}

func TestLoadDiscardsMalformedSnapshots(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{{{"},
		{name: "wrong shape", raw: `{"score": 3}`},
		{name: "unknown difficulty", raw: `[{"id":1,"score":3,"wpm":9,"accuracy":80,"difficulty":"nightmare","date":"1/1/2026"}]`},
		{name: "accuracy out of range", raw: `[{"id":1,"score":3,"wpm":9,"accuracy":180,"difficulty":"easy","date":"1/1/2026"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mem := store.NewMemory()
			require.NoError(t, mem.Set(ctx, Key, tt.raw))
			board := Load(ctx, mem, zerolog.Nop())
			require.Empty(t, board.Entries())
		})
	}
}

func TestLoadRanksOversizedSnapshot(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	raw := `[` +
		`{"id":1,"score":1,"wpm":1,"accuracy":50,"difficulty":"easy","date":"1/1/2026"},` +
		`{"id":2,"score":6,"wpm":1,"accuracy":50,"difficulty":"easy","date":"1/1/2026"},` +
		`{"id":3,"score":2,"wpm":1,"accuracy":50,"difficulty":"hard","date":"1/1/2026"},` +
		`{"id":4,"score":5,"wpm":1,"accuracy":50,"difficulty":"easy","date":"1/1/2026"},` +
		`{"id":5,"score":3,"wpm":1,"accuracy":50,"difficulty":"medium","date":"1/1/2026"},` +
		`{"id":6,"score":4,"wpm":1,"accuracy":50,"difficulty":"easy","date":"1/1/2026"}` +
		`]`
	require.NoError(t, mem.Set(ctx, Key, raw))
	board := Load(ctx, mem, zerolog.Nop())
	require.Equal(t, []int{6, 5, 4, 3, 2}, scores(board.Entries()))
}

func TestStorageFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	fs := &failingStorage{}
	board := Load(ctx, fs, zerolog.Nop())
	require.Empty(t, board.Entries())

	entry := board.Record(ctx, result(3, 0))
	require.Equal(t, 3, entry.Score)
	require.Equal(t, 1, fs.sets)
	require.Len(t, board.Entries(), 1)
}

func TestEntriesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	board := Load(ctx, store.NewMemory(), zerolog.Nop())
	board.Record(ctx, result(3, 0))
	entries := board.Entries()
	entries[0].Score = 99
	require.Equal(t, 3, board.Entries()[0].Score)
}
