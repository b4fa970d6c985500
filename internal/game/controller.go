package game

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/wordrush/internal/clock"
	"github.com/verte-zerg/wordrush/internal/leaderboard"
	"github.com/verte-zerg/wordrush/internal/model"
)

// TickInterval is the countdown cadence.
const TickInterval = time.Second

// Board ranks finished runs.
type Board interface {
	Record(ctx context.Context, r leaderboard.Result) model.LeaderboardEntry
}

// History stores finished runs.
type History interface {
	InsertRun(ctx context.Context, run model.RunStats) (int64, error)
}

// Options configures a Controller. Zero values pick real-time defaults.
type Options struct {
	Clock   clock.Clock
	Board   Board
	History History
	Log     zerolog.Logger
	Now     func() time.Time
}

// Snapshot is the observable state of the live session.
type Snapshot struct {
	State
	// Finished is the entry recorded for the last completed run, nil until
	// the session ends with elapsed time.
	Finished *model.LeaderboardEntry
}

// Controller owns the live session and its countdown ticker. All operations
// are serialized; a tick delivered after its ticker was cancelled is ignored.
type Controller struct {
	mu       sync.Mutex
	levels   model.Levels
	clock    clock.Clock
	board    Board
	history  History
	log      zerolog.Logger
	now      func() time.Time
	session  *Session
	ticker   clock.Ticker
	gen      uint64
	finished *model.LeaderboardEntry
	observer func()
}

// NewController creates a controller with a fresh session at difficulty.
func NewController(levels model.Levels, difficulty model.Difficulty, words WordSource, opts Options) *Controller {
	c := &Controller{
		levels:  levels,
		clock:   opts.Clock,
		board:   opts.Board,
		history: opts.History,
		log:     opts.Log.With().Str("component", "game").Logger(),
		now:     opts.Now,
	}
	if c.clock == nil {
		c.clock = clock.Real{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	c.session = NewSession(levels.Get(difficulty), words)
	return c
}

// OnChange registers fn to be called after every state change, outside the
// controller lock. fn must not block.
func (c *Controller) OnChange(fn func()) {
	c.mu.Lock()
	c.observer = fn
	c.mu.Unlock()
}

// Start begins the countdown without typing.
func (c *Controller) Start() {
	c.mu.Lock()
	wasStarted := c.session.Started()
	c.session.Start()
	if !wasStarted && c.session.Started() {
		c.startTicker()
	}
	c.unlockAndNotify()
}

// ApplyInput forwards the full input text to the session and reports
// whether it completed the word.
func (c *Controller) ApplyInput(input string) bool {
	c.mu.Lock()
	wasStarted := c.session.Started()
	matched := c.session.ApplyInput(input)
	if !wasStarted && c.session.Started() {
		c.startTicker()
		c.log.Debug().Str("level", string(c.session.level.Name)).Msg("run started")
	}
	c.unlockAndNotify()
	return matched
}

// Restart cancels the countdown and begins a fresh run at difficulty.
func (c *Controller) Restart(difficulty model.Difficulty) {
	c.mu.Lock()
	c.stopTicker()
	c.finished = nil
	c.session.Restart(c.levels.Get(difficulty))
	c.unlockAndNotify()
}

// ChangeDifficulty switches level. The in-progress run is always discarded.
func (c *Controller) ChangeDifficulty(difficulty model.Difficulty) {
	c.mu.Lock()
	c.stopTicker()
	c.finished = nil
	c.session.ChangeDifficulty(c.levels.Get(difficulty))
	c.unlockAndNotify()
}

// Snapshot returns the current observable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{State: c.session.State()}
	if c.finished != nil {
		entry := *c.finished
		snap.Finished = &entry
	}
	return snap
}

// Close cancels the countdown.
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopTicker()
	c.mu.Unlock()
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.ticker == nil {
		c.mu.Unlock()
		return
	}
	c.session.OnTick()
	if c.session.Over() {
		c.stopTicker()
		c.finish()
	}
	c.unlockAndNotify()
}

func (c *Controller) startTicker() {
	c.stopTicker()
	gen := c.gen
	c.ticker = c.clock.Every(TickInterval, func() { c.tick(gen) })
}

// stopTicker cancels the current ticker and invalidates its pending ticks.
func (c *Controller) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.gen++
}

func (c *Controller) finish() {
	st := c.session.State()
	logger := c.log.With().
		Str("level", string(st.Level.Name)).
		Int("score", st.Score).
		Int("elapsed", st.ElapsedSeconds).
		Logger()
	if st.ElapsedSeconds == 0 {
		logger.Debug().Msg("run ended without elapsed time, not recorded")
		return
	}
	at := c.now()
	ctx := context.Background()
	if c.board != nil {
		entry := c.board.Record(ctx, leaderboard.Result{
			Score:      st.Score,
			WPM:        st.WPM,
			Accuracy:   st.Accuracy,
			Difficulty: st.Level.Name,
			At:         at,
		})
		c.finished = &entry
	}
	if c.history != nil {
		if _, err := c.history.InsertRun(ctx, model.RunStats{
			EndedAt:        at,
			Difficulty:     st.Level.Name,
			Score:          st.Score,
			WPM:            st.WPM,
			Accuracy:       st.Accuracy,
			ElapsedSeconds: st.ElapsedSeconds,
			TotalChars:     st.TotalChars,
			CorrectChars:   st.CorrectChars,
		}); err != nil {
			logger.Warn().Err(err).Msg("failed to save run history")
		}
	}
	logger.Info().Int("wpm", st.WPM).Int("accuracy", st.Accuracy).Msg("run finished")
}

func (c *Controller) unlockAndNotify() {
	fn := c.observer
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
