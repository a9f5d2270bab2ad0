package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiletap/internal/storage"
)

// newResultsTable creates a table with appropriate columns for the given size.
func newResultsTable(width, height int) table.Model {
	// Give spare width to the variant column
	variantWidth := min(max(width-4-7-7-8-10-14, 8), 20)
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Variant", Width: variantWidth},
		{Title: "Score", Width: 7},
		{Title: "Misses", Width: 7},
		{Title: "Ended", Width: 8},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10-bestRoundsShown, 3)), // Leave room for header, best rounds, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resultRows converts results to table rows, newest first.
func resultRows(results []storage.RoundResult) []table.Row {
	rows := make([]table.Row, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		ended := "timer"
		if r.EndedByMiss {
			ended = "miss"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Variant,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Misses),
			ended,
			r.FinishedAt.Format("15:04:05"),
		})
	}
	return rows
}

// bestRoundsShown is how many rounds the results screen ranks.
const bestRoundsShown = 3

// sessionSummary is what the results screens show of the store.
type sessionSummary struct {
	rounds   []storage.RoundResult
	stats    storage.GameStats
	best     []storage.RoundResult
	variants map[string]storage.GameStats
}

// loadSummary reads everything the results screens need from the store.
func loadSummary(store *storage.Store, bestLimit int) (sessionSummary, error) {
	var sum sessionSummary
	var err error
	if sum.rounds, err = store.Rounds(); err != nil {
		return sum, err
	}
	if sum.stats, err = store.Stats(""); err != nil {
		return sum, err
	}
	if sum.best, err = store.TopScores("", bestLimit); err != nil {
		return sum, err
	}
	if sum.variants, err = store.AllStats(); err != nil {
		return sum, err
	}
	return sum, nil
}

// bestRoundsBlock lists the top rounds, one per line.
func bestRoundsBlock(best []storage.RoundResult) string {
	var b strings.Builder
	b.WriteString("Best rounds")
	for i, r := range best {
		fmt.Fprintf(&b, "\n%d. %-16s %4d  (round %d)", i+1, r.Variant, r.Score, r.ID)
	}
	return b.String()
}

// renderResults renders the session table screen.
func renderResults(sum sessionSummary, t table.Model, width int, helpView string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SESSION RESULTS", width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(sum.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(boxStyle.Render(emptyStyle.Render("No rounds played yet.\nPick Play to start one!")), width))
	} else {
		bestStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Padding(0, 1)
		b.WriteString(centerText(boxStyle.Render(t.View()), width))
		b.WriteString("\n")
		b.WriteString(centerText(bestStyle.Render(bestRoundsBlock(sum.best)), width))
		b.WriteString("\n\n")
		summary := fmt.Sprintf("Rounds: %d   Best: %d   Average: %.1f", sum.stats.Rounds, sum.stats.HighScore, sum.stats.AvgScore)
		b.WriteString(centerText(summary, width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(helpView))
	return b.String()
}

// SummaryTable renders the results as a plain lipgloss block for printing
// after the program exits. It is empty when no round was played.
func SummaryTable(store *storage.Store) (string, error) {
	sum, err := loadSummary(store, bestRoundsShown)
	if err != nil {
		return "", err
	}
	if len(sum.rounds) == 0 {
		return "", nil
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	var b strings.Builder
	b.WriteString(header.Render(fmt.Sprintf("%-4s %-16s %6s %7s %6s", "#", "Variant", "Score", "Misses", "Ended")))
	b.WriteString("\n")
	for _, r := range sum.rounds {
		ended := "timer"
		if r.EndedByMiss {
			ended = "miss"
		}
		fmt.Fprintf(&b, "%-4d %-16s %6d %7d %6s\n", r.ID, r.Variant, r.Score, r.Misses, ended)
	}

	b.WriteString("\n")
	variants := make([]string, 0, len(sum.variants))
	for v := range sum.variants {
		variants = append(variants, v)
	}
	sort.Strings(variants)
	for _, v := range variants {
		gs := sum.variants[v]
		fmt.Fprintf(&b, "%-16s best %d, average %.1f over %d rounds\n", v, gs.HighScore, gs.AvgScore, gs.Rounds)
	}
	b.WriteString("\n")
	b.WriteString(bestRoundsBlock(sum.best))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "best %d, average %.1f over %d rounds", sum.stats.HighScore, sum.stats.AvgScore, sum.stats.Rounds)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(b.String()), nil
}

// centerText centers a (possibly multi-line) block within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
