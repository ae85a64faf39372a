package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/riskibarqy/player-relations/internal/domain/player"
	"github.com/riskibarqy/player-relations/internal/domain/rules"
	"github.com/riskibarqy/player-relations/internal/usecase"
)

const noRows = "(none)"

var playerHeaders = []string{"Name", "Birth country", "Birth date", "Club", "Position", "Height", "Shirt", "Goals", "League"}

// ReportWriter prints a rule report section by section, in rule order.
type ReportWriter struct {
	out     io.Writer
	err     error
	heading lipgloss.Style
	muted   lipgloss.Style
}

// NewReportWriter styles output for out. Styles degrade to plain text when out
// is not a terminal.
func NewReportWriter(out io.Writer) *ReportWriter {
	renderer := lipgloss.NewRenderer(out)
	return &ReportWriter{
		out:     out,
		heading: renderer.NewStyle().Bold(true),
		muted:   renderer.NewStyle().Faint(true),
	}
}

func (w *ReportWriter) Write(report usecase.Report) error {
	w.printf("%s\n", w.muted.Render(fmt.Sprintf("run %s at %s: %d raw rows, %d players",
		report.RunID, report.GeneratedAt.Format(time.RFC3339), report.RawCount, report.PlayerCount)))

	w.section(1)
	w.pairs(report.Contemporaries)

	w.section(2)
	w.pairs(report.Teammates)
	w.subjectTeammates(report.SubjectTeammates)

	w.section(3)
	w.countryPairs(report.SuperTeammates)

	w.section(4)
	w.players(report.Strikers)
	w.printf("%s is a striker: %t\n", report.SubjectStriker.Subject, report.SubjectStriker.IsStriker)

	w.section(5)
	w.competitorPairs(report.Competitors)

	w.section(6)
	w.rivalPairs(report.Rivals)

	w.section(7)
	w.players(report.Goalkeepers)

	w.section(8)
	w.players(report.ShirtTenScoreless)

	return w.err
}

func (w *ReportWriter) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *ReportWriter) section(n int) {
	w.printf("\n%s\n", w.heading.Render(fmt.Sprintf("Running rule %d ...", n)))
}

func (w *ReportWriter) lines(items []string) {
	if len(items) == 0 {
		w.printf("%s\n", noRows)
		return
	}
	w.printf("%s\n", strings.Join(items, "\n"))
}

func (w *ReportWriter) pairs(items []rules.Pair) {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, tuple(p.First, p.Second))
	}
	w.lines(out)
}

func (w *ReportWriter) countryPairs(items []rules.CountryPair) {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, tuple(p.First, p.Second, p.Country))
	}
	w.lines(out)
}

func (w *ReportWriter) competitorPairs(items []rules.CompetitorPair) {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, tuple(p.First, p.Second, p.Position, p.Club))
	}
	w.lines(out)
}

func (w *ReportWriter) rivalPairs(items []rules.RivalPair) {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, tuple(p.First, p.Second, p.League))
	}
	w.lines(out)
}

func (w *ReportWriter) subjectTeammates(s usecase.SubjectTeammates) {
	if s.NotFound {
		w.printf("Teammates of %s: %s\n", s.Subject, s.Message)
		return
	}
	w.printf("Teammates of %s: [%s]\n", s.Subject, strings.Join(s.Teammates, ", "))
}

func (w *ReportWriter) players(items []player.Player) {
	if len(items) == 0 {
		w.printf("%s\n", noRows)
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(playerHeaders...)
	for _, p := range items {
		t.Row(playerRow(p)...)
	}
	w.printf("%s\n", t.String())
}

func playerRow(p player.Player) []string {
	country, ok := p.Country()
	if !ok {
		country = "-"
	}
	return []string{
		p.Name,
		country,
		p.BirthDate,
		p.Club,
		p.Position,
		strconv.FormatFloat(p.HeightMeters, 'f', 2, 64),
		strconv.Itoa(p.ShirtNumber),
		strconv.Itoa(p.Goals),
		p.League,
	}
}

func tuple(values ...string) string {
	return "(" + strings.Join(values, ", ") + ")"
}
