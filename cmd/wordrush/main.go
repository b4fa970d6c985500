// Package main provides the CLI entrypoint for wordrush.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordrush/internal/config"
	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/generator"
	"github.com/verte-zerg/wordrush/internal/leaderboard"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/stats"
	"github.com/verte-zerg/wordrush/internal/store"
	"github.com/verte-zerg/wordrush/internal/theme"
	"github.com/verte-zerg/wordrush/internal/tui"
	"github.com/verte-zerg/wordrush/internal/wordlist"
)

const (
	defaultDifficulty  = model.Medium
	defaultHistoryLast = 20
)

var (
	playDifficulty string
	playWordsFile  string
	playGuest      bool

	historyLast int
)

// storage is the persistence surface shared by the SQLite and in-memory stores.
type storage interface {
	leaderboard.Storage
	game.History
	ListRuns(ctx context.Context, last int) ([]model.RunStats, error)
}

func main() {
	if err := config.LoadEnv(); err != nil {
		logErrf("failed to load .env: %v\n", err)
	}
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordrush",
		Short:         "Timed typing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playDifficulty, "difficulty", string(defaultDifficulty), "difficulty level (easy, medium, hard)")
	rootCmd.Flags().StringVar(&playWordsFile, "words-file", "", "custom vocabulary file, one word per line")
	rootCmd.Flags().BoolVar(&playGuest, "guest", false, "play without saving scores or settings")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newThemeCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "difficulty", &playDifficulty, fileCfg.Game.Difficulty)
	applyStringConfig(cmd, "words-file", &playWordsFile, fileCfg.Game.WordsFile)

	levels, err := fileCfg.ApplyLevels(model.DefaultLevels())
	if err != nil {
		return err
	}
	cfg := model.Config{
		Difficulty: model.Difficulty(strings.ToLower(strings.TrimSpace(playDifficulty))),
		WordsFile:  playWordsFile,
		Guest:      playGuest,
		Levels:     levels,
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	words, err := wordlist.Resolve(cfg.WordsFile)
	if err != nil {
		return err
	}

	logger, closeLog := newFileLogger(config.DefaultLogPath())
	defer closeLog()

	st, closeStore, err := openStorage(cfg.Guest)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	board := leaderboard.Load(ctx, st, logger)
	th := theme.Load(ctx, st, logger)
	gen := generator.New(words)
	ctrl := game.NewController(cfg.Levels, cfg.Difficulty, gen, game.Options{
		Board:   board,
		History: st,
		Log:     logger,
	})
	defer ctrl.Close()

	logger.Info().
		Str("difficulty", string(cfg.Difficulty)).
		Int("words", gen.Words()).
		Bool("guest", cfg.Guest).
		Msg("starting game")

	program := tea.NewProgram(tui.NewModel(ctrl, board, th, cfg.Levels), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show the top 5 leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}
	st, closeStore, err := openStorage(false)
	if err != nil {
		return err
	}
	defer closeStore()

	board := leaderboard.Load(cmd.Context(), st, newConsoleLogger())
	out := cmd.OutOrStdout()
	if err := writeHeading(out, "Leaderboard"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderLeaderboard(out, board.Entries(), levels); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", defaultHistoryLast, "number of recent runs (0 for all)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	levels, err := loadLevels()
	if err != nil {
		return err
	}
	st, closeStore, err := openStorage(false)
	if err != nil {
		return err
	}
	defer closeStore()

	runs, err := st.ListRuns(cmd.Context(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := writeHeading(out, "Recent runs"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderHistory(out, runs, levels); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle]",
		Short:     "Show or toggle the color theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle"},
		RunE:      runThemeCmd,
	}
}

func runThemeCmd(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStorage(false)
	if err != nil {
		return err
	}
	defer closeStore()

	th := theme.Load(cmd.Context(), st, newConsoleLogger())
	mode := th.Current()
	if len(args) == 1 {
		mode = th.Toggle(cmd.Context())
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), mode); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func openStorage(guest bool) (storage, func(), error) {
	if guest {
		return store.NewMemory(), func() {}, nil
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}, nil
}

func loadLevels() (model.Levels, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return fileCfg.ApplyLevels(model.DefaultLevels())
}

func logLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func newConsoleLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel()).
		With().Timestamp().Logger()
}

// newFileLogger logs to path while the TUI owns the terminal. Logging is
// disabled when the file cannot be opened.
func newFileLogger(path string) (zerolog.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	logger := zerolog.New(f).Level(logLevel()).With().Timestamp().Logger()
	return logger, func() {
		_ = f.Close()
	}
}

func writeHeading(w io.Writer, title string) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}
	_, err := fmt.Fprintln(w, title)
	return err
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	levels := model.DefaultLevels()
	var b strings.Builder
	fmt.Fprintf(&b, `# wordrush configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# difficulty = %q     # easy, medium or hard
# words-file = ""         # Custom vocabulary, one word per line
`, defaultDifficulty)
	for _, d := range model.Difficulties {
		level := levels[d]
		fmt.Fprintf(&b, `
# [levels.%s]
# base-time = %d          # Starting countdown in seconds
# bonus = %d              # Seconds added per correct word
`, d, level.BaseTimeSeconds, level.BonusSeconds)
	}
	return b.String()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
