// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/theme"
)

const (
	gamePanelWidth  = 58
	sideBySideWidth = 110
)

// Leaderboard lists ranked entries.
type Leaderboard interface {
	Entries() []model.LeaderboardEntry
}

type changedMsg struct{}

// Model implements the Bubble Tea game UI.
type Model struct {
	ctrl    *game.Controller
	board   Leaderboard
	theme   *theme.Holder
	levels  model.Levels
	changes chan struct{}

	styles styles
	input  textinput.Model
	table  table.Model

	width  int
	height int
}

// NewModel constructs the game UI over a controller.
func NewModel(ctrl *game.Controller, board Leaderboard, th *theme.Holder, levels model.Levels) *Model {
	m := &Model{
		ctrl:    ctrl,
		board:   board,
		theme:   th,
		levels:  levels,
		changes: make(chan struct{}, 1),
	}
	m.input = textinput.New()
	m.input.Prompt = "› "
	m.input.Placeholder = "Type the word here…"
	m.input.CharLimit = 0
	m.input.Width = gamePanelWidth - 8
	m.input.Focus()

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Level", Width: 7},
			{Title: "Pts", Width: 4},
			{Title: "WPM · Acc", Width: 11},
			{Title: "Date", Width: 10},
		}),
		table.WithHeight(leaderboardHeight()),
		table.WithFocused(false),
	)
	m.applyTheme()

	ctrl.OnChange(func() {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})
	m.sync()
	return m
}

func leaderboardHeight() int {
	return 6
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return changedMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case changedMsg:
		m.sync()
		return m, m.waitForChange()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlR:
		m.ctrl.Restart(m.ctrl.Snapshot().Level.Name)
		m.sync()
		return m, nil
	case tea.KeyTab:
		snap := m.ctrl.Snapshot()
		if snap.CanChangeDifficulty() {
			m.ctrl.ChangeDifficulty(snap.Level.Name.Next())
			m.sync()
		}
		return m, nil
	case tea.KeyCtrlT:
		m.theme.Toggle(context.Background())
		m.applyTheme()
		return m, nil
	}

	snap := m.ctrl.Snapshot()
	if snap.Over {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != snap.Input {
		m.ctrl.ApplyInput(value)
		m.sync()
	}
	return m, cmd
}

// sync pulls controller and leaderboard state into the widgets.
func (m *Model) sync() {
	snap := m.ctrl.Snapshot()
	if m.input.Value() != snap.Input {
		m.input.SetValue(snap.Input)
	}
	if snap.Over {
		m.input.Placeholder = "Game over. Press ctrl+r to play again."
		m.input.Blur()
	} else {
		m.input.Placeholder = "Type the word here…"
		m.input.Focus()
	}
	m.table.SetRows(leaderboardRows(m.board.Entries(), m.levels, snap.Finished))
}

func (m *Model) applyTheme() {
	m.styles = newStyles(m.theme.Current())
	m.table.SetStyles(m.styles.tableSkin)
	m.input.PromptStyle = m.styles.label
	m.input.TextStyle = m.styles.value
	m.input.PlaceholderStyle = m.styles.subtitle
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.ctrl.Snapshot()
	gamePanel := m.styles.panel.Width(gamePanelWidth).Render(m.renderGame(snap))
	boardPanel := m.styles.panel.Render(m.renderLeaderboard())

	var body string
	if m.width >= sideBySideWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, gamePanel, "  ", boardPanel)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, gamePanel, boardPanel)
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) renderGame(snap game.Snapshot) string {
	toggleHint := "dark mode"
	if m.theme.Current() == theme.Dark {
		toggleHint = "light mode"
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Typing Game"),
		m.styles.subtitle.Render("ctrl+t: "+toggleHint),
	)
	word := m.styles.word.
		Width(gamePanelWidth - 6).
		Align(lipgloss.Center).
		Render(spaceLetters(snap.Word, gamePanelWidth-6))

	settings := m.styles.label.Render(fmt.Sprintf("Difficulty %s   Bonus per correct word +%ds",
		m.styles.value.Render(snap.Level.Label), snap.Level.BonusSeconds))

	parts := []string{header, word, m.input.View(), "", settings, m.renderStats(snap)}
	if snap.Over {
		parts = append(parts, m.styles.gameOver.Render(gameOverLine(snap)))
	}
	parts = append(parts, m.styles.help.Render(helpLine(snap)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderStats(snap game.Snapshot) string {
	cards := []struct {
		label string
		value string
	}{
		{"Time", fmt.Sprintf("%ds", snap.TimeRemaining)},
		{"Score", strconv.Itoa(snap.Score)},
		{"WPM", strconv.Itoa(snap.WPM)},
		{"Accuracy", fmt.Sprintf("%d%%", snap.Accuracy)},
	}
	// Width includes horizontal padding; size every card to the widest text.
	inner := 0
	for _, c := range cards {
		inner = max(inner, lipgloss.Width(c.label), lipgloss.Width(c.value))
	}
	card := m.styles.card.Width(inner + m.styles.card.GetHorizontalPadding())
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, card.Render(
			m.styles.label.Render(c.label)+"\n"+m.styles.value.Render(c.value)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderLeaderboard() string {
	title := m.styles.heading.Render("Leaderboard")
	note := m.styles.subtitle.Render("Top 5 runs are stored locally.")
	if len(m.table.Rows()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, note, "", m.styles.subtitle.Render("No scores yet. Play a round!"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, note, "", m.table.View())
}

func leaderboardRows(entries []model.LeaderboardEntry, levels model.Levels, finished *model.LeaderboardEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rank := fmt.Sprintf("#%d", i+1)
		if finished != nil && finished.ID == e.ID {
			rank = "›" + strconv.Itoa(i+1)
		}
		rows = append(rows, table.Row{
			rank,
			levels.Get(e.Difficulty).Label,
			strconv.Itoa(e.Score),
			fmt.Sprintf("%d · %d%%", e.WPM, e.Accuracy),
			e.Date,
		})
	}
	return rows
}

func gameOverLine(snap game.Snapshot) string {
	return fmt.Sprintf("Game over! Score %d · %d WPM · %d%% accuracy on %s.",
		snap.Score, snap.WPM, snap.Accuracy, snap.Level.Label)
}

func helpLine(snap game.Snapshot) string {
	segments := []string{"ctrl+r: restart"}
	if snap.CanChangeDifficulty() {
		segments = append(segments, "tab: difficulty")
	}
	segments = append(segments, "esc: quit")
	return strings.Join(segments, "  ")
}

// spaceLetters spreads a word out for display, truncated to width cells.
func spaceLetters(word string, width int) string {
	runes := []rune(word)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	spaced := strings.Join(parts, " ")
	if runewidth.StringWidth(spaced) <= width {
		return spaced
	}
	return runewidth.Truncate(spaced, width, "…")
}
