package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/wordrush/internal/model"
)

// RenderLeaderboard prints ranked entries as an aligned table.
func RenderLeaderboard(w io.Writer, entries []model.LeaderboardEntry, levels model.Levels) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No scores yet. Play a round!")
		return err
	}
	cols := []column{{title: "#"}, {title: "Level"}, {title: "Score", right: true}, {title: "WPM", right: true}, {title: "Accuracy", right: true}, {title: "Date"}}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", i+1),
			levels.Get(e.Difficulty).Label,
			strconv.Itoa(e.Score),
			strconv.Itoa(e.WPM),
			fmt.Sprintf("%d%%", e.Accuracy),
			e.Date,
		})
	}
	return writeLines(w, renderTable(cols, rows))
}

// RenderHistory prints finished runs, oldest first.
func RenderHistory(w io.Writer, runs []model.RunStats, levels model.Levels) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	cols := []column{{title: "Ended"}, {title: "Level"}, {title: "Score", right: true}, {title: "WPM", right: true}, {title: "Accuracy", right: true}, {title: "Time", right: true}}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.EndedAt.Local().Format("2006-01-02 15:04"),
			levels.Get(r.Difficulty).Label,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.WPM),
			fmt.Sprintf("%d%%", r.Accuracy),
			fmt.Sprintf("%ds", r.ElapsedSeconds),
		})
	}
	return writeLines(w, renderTable(cols, rows))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
