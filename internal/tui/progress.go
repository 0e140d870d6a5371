// Package tui implements the optional "--live" progress view: lipgloss
// title/subtle styles, a two-column stats readout, refreshed on a tick.
// It is a standalone bubbletea.Model rather than one screen embedded in a
// larger one, since playperf has exactly one thing to show while a run is
// in flight.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/playperf/internal/stats"
)

var (
	colorCyan  = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
	colorGray  = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorGreen = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed   = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSubtle  = lipgloss.NewStyle().Foreground(colorGray)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const tickInterval = 200 * time.Millisecond

// ProgressSource is the read-only view the live view polls; *arena.Arena
// satisfies it.
type ProgressSource interface {
	OverallSummary() *stats.Summary
}

type tickMsg time.Time

// ProgressModel renders a live readout of a run's overall Summary while it
// is in flight.
type ProgressModel struct {
	source      ProgressSource
	clients     int
	started     time.Time
	done        <-chan struct{}
	quitOnClose bool
	finished    bool
}

// NewProgressModel builds a live view over source. done, if non-nil, is
// closed by the caller when the run completes; the view then quits itself.
func NewProgressModel(source ProgressSource, clients int, done <-chan struct{}) ProgressModel {
	return ProgressModel{
		source:      source,
		clients:     clients,
		started:     time.Now(),
		done:        done,
		quitOnClose: done != nil,
	}
}

func (m ProgressModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.quitOnClose {
			select {
			case <-m.done:
				m.finished = true
				return m, tea.Quit
			default:
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m ProgressModel) View() string {
	var b strings.Builder

	title := "playperf - running"
	if m.finished {
		title = "playperf - done"
	}
	b.WriteString(styleTitle.Render(title) + "\n\n")

	s := m.source.OverallSummary().Snapshot()
	elapsed := time.Since(m.started)

	b.WriteString(fmt.Sprintf("Elapsed: %s   Clients: %d\n\n", formatDuration(elapsed), m.clients))

	b.WriteString(styleTitle.Render("Latency (avg/max/min, ms)") + "\n")
	b.WriteString(fmt.Sprintf("  resolve:     %s\n", triple(s.Resolve)))
	b.WriteString(fmt.Sprintf("  connect:     %s\n", triple(s.Connect)))
	b.WriteString(fmt.Sprintf("  recv header: %s\n", triple(s.RecvHeader)))
	b.WriteString(fmt.Sprintf("  first chunk: %s\n\n", triple(s.FirstChunk)))

	b.WriteString(styleTitle.Render("Throughput") + "\n")
	b.WriteString(fmt.Sprintf("  bytes/ms (avg/max/min): %s\n\n", triple(s.Throughput)))

	errTotal := errCountAll(s)
	errLine := fmt.Sprintf("Errors: %d", errTotal)
	if errTotal > 0 {
		b.WriteString(styleError.Render(errLine) + "\n")
	} else {
		b.WriteString(styleSuccess.Render(errLine) + "\n")
	}

	b.WriteString("\n" + styleSubtle.Render("press q to quit") + "\n")
	return b.String()
}

func triple(a stats.Avg) string {
	return fmt.Sprintf("%s/%s/%s", a.Value(), a.Max(), a.Min())
}

func errCountAll(s stats.Snapshot) uint64 {
	var total uint64
	for _, k := range []stats.ErrorKind{
		stats.ErrOnResolve, stats.ErrOnConnect, stats.ErrOnRequest,
		stats.ErrOnRecv, stats.ErrBadHTTP, stats.ErrTimeoutForNoData, stats.ErrEarlyEOF,
	} {
		total += s.ErrorCount(k)
	}
	return total
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return d.String()
}

// Run starts the bubbletea program and blocks until the user quits or the
// run completes.
func Run(source ProgressSource, clients int, done <-chan struct{}) error {
	p := tea.NewProgram(NewProgressModel(source, clients, done))
	_, err := p.Run()
	return err
}
