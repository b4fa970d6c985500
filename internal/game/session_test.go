package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordrush/internal/model"
)

// sequence returns its words in order, cycling.
type sequence struct {
	words []string
	calls int
}

func (s *sequence) Next(model.Difficulty) string {
	w := s.words[s.calls%len(s.words)]
	s.calls++
	return w
}

func newTestSession(level model.Difficulty, words ...string) (*Session, *sequence) {
	src := &sequence{words: words}
	return NewSession(model.DefaultLevels().Get(level), src), src
}

func requireConsistent(t *testing.T, st State) {
	t.Helper()
	require.Equal(t, st.Over, st.TimeRemaining == 0, "over must match an empty countdown: %+v", st)
	if st.Over {
		require.True(t, st.Started, "over implies started")
	}
}

func TestRestartResetsForEveryLevel(t *testing.T) {
	for _, d := range model.Difficulties {
		t.Run(string(d), func(t *testing.T) {
			level := model.DefaultLevels().Get(d)
			s, _ := newTestSession(model.Medium, "react", "hook")
			s.ApplyInput("react")
			s.ApplyInput("ho")
			s.OnTick()

			s.Restart(level)
			st := s.State()
			require.Equal(t, level.BaseTimeSeconds, st.TimeRemaining)
			require.Equal(t, 0, st.Score)
			require.Equal(t, 0, st.ElapsedSeconds)
			require.Equal(t, 0, st.TotalChars)
			require.Equal(t, 0, st.CorrectChars)
			require.Empty(t, st.Input)
			require.NotEmpty(t, st.Word)
			require.False(t, st.Started)
			require.False(t, st.Over)
			require.Equal(t, level, st.Level)
		})
	}
}

func TestExactMatchScoresAndAddsBonus(t *testing.T) {
	s, src := newTestSession(model.Medium, "react", "hook")
	require.Equal(t, "react", s.State().Word)

	require.False(t, s.ApplyInput("rea"))
	require.True(t, s.ApplyInput("react"))

	st := s.State()
	require.Equal(t, 1, st.Score)
	require.Equal(t, 28, st.TimeRemaining)
	require.Equal(t, "hook", st.Word)
	require.Empty(t, st.Input)
	require.Equal(t, 2, src.calls)
	require.Equal(t, 5, st.CorrectChars)
	require.Equal(t, 5, st.TotalChars)
	require.True(t, st.Started)
}

func TestMatchIsCaseAndWhitespaceSensitive(t *testing.T) {
	for _, input := range []string{"React", "react ", " react", "REACT"} {
		s, _ := newTestSession(model.Easy, "react")
		require.False(t, s.ApplyInput(input), "input %q", input)
		st := s.State()
		require.Equal(t, 0, st.Score)
		require.Equal(t, input, st.Input)
	}
}

func TestDeletionsDoNotReduceTotal(t *testing.T) {
	s, _ := newTestSession(model.Medium, "design")
	s.ApplyInput("dez")
	s.ApplyInput("de")
	s.ApplyInput("des")
	st := s.State()
	require.Equal(t, 4, st.TotalChars)
	require.Equal(t, "des", st.Input)

	s.ApplyInput("")
	require.Equal(t, 4, s.State().TotalChars)
}

func TestPastedInputCountsAllNewCharacters(t *testing.T) {
	s, _ := newTestSession(model.Medium, "keyboard", "state")
	require.True(t, s.ApplyInput("keyboard"))
	st := s.State()
	require.Equal(t, 8, st.TotalChars)
	require.Equal(t, 8, st.CorrectChars)
}

func TestRepeatedBonusIsUncapped(t *testing.T) {
	s, _ := newTestSession(model.Easy, "hook")
	for i := 0; i < 20; i++ {
		require.True(t, s.ApplyInput("hook"))
	}
	require.Equal(t, 40+20*5, s.State().TimeRemaining)
}

func TestTicksRunDownToTerminalState(t *testing.T) {
	s, _ := newTestSession(model.Hard, "state")
	s.OnTick()
	require.Equal(t, 18, s.State().TimeRemaining, "ticks before start are ignored")

	s.Start()
	for i := 0; i < 17; i++ {
		s.OnTick()
		requireConsistent(t, s.State())
	}
	st := s.State()
	require.Equal(t, 1, st.TimeRemaining)
	require.Equal(t, 17, st.ElapsedSeconds)
	require.False(t, st.Over)

	s.OnTick()
	st = s.State()
	require.True(t, st.Over)
	require.Equal(t, 0, st.TimeRemaining)
	require.Equal(t, 17, st.ElapsedSeconds)
	requireConsistent(t, st)

	s.OnTick()
	require.Equal(t, st, s.State(), "ticks after the end are ignored")
}

func TestInputAfterOverIsIgnored(t *testing.T) {
	s, _ := newTestSession(model.Hard, "state", "hook")
	s.ApplyInput("sta")
	for i := 0; i < 30; i++ {
		s.OnTick()
	}
	before := s.State()
	require.True(t, before.Over)

	require.False(t, s.ApplyInput("state"))
	require.False(t, s.ApplyInput("statexyz"))
	s.Start()
	require.Equal(t, before, s.State())
}

func TestStartIsIdempotent(t *testing.T) {
	s, _ := newTestSession(model.Medium, "hook")
	s.Start()
	s.Start()
	st := s.State()
	require.True(t, st.Started)
	require.Equal(t, 25, st.TimeRemaining)
}

func TestChangeDifficultyDiscardsRun(t *testing.T) {
	s, _ := newTestSession(model.Medium, "hook")
	s.ApplyInput("hook")
	s.OnTick()

	s.ChangeDifficulty(model.DefaultLevels().Get(model.Easy))
	st := s.State()
	require.Equal(t, model.Easy, st.Level.Name)
	require.Equal(t, 40, st.TimeRemaining)
	require.Equal(t, 0, st.Score)
	require.False(t, st.Started)
	require.True(t, st.CanChangeDifficulty())
}

func TestCanChangeDifficulty(t *testing.T) {
	require.True(t, State{}.CanChangeDifficulty())
	require.False(t, State{Started: true}.CanChangeDifficulty())
	require.True(t, State{Started: true, Over: true}.CanChangeDifficulty())
}

func TestLiveMetrics(t *testing.T) {
	s, _ := newTestSession(model.Easy, "hook")
	s.ApplyInput("hook")
	s.ApplyInput("hoo")
	s.ApplyInput("hx")
	for i := 0; i < 30; i++ {
		s.OnTick()
	}
	st := s.State()
	require.Equal(t, 30, st.ElapsedSeconds)
	require.Equal(t, 2, st.WPM)
	require.Equal(t, 57, st.Accuracy)
}
