package display

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

var (
	colorCool = lipgloss.Color("39")
	colorWarm = lipgloss.Color("78")
	colorHot  = lipgloss.Color("208")
	colorDim  = lipgloss.Color("240")

	humStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

func tempStyle(level string) lipgloss.Style {
	switch level {
	case model.LevelCool:
		return lipgloss.NewStyle().Bold(true).Foreground(colorCool)
	case model.LevelHot:
		return lipgloss.NewStyle().Bold(true).Foreground(colorHot)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorWarm)
	}
}

type ConsoleConfig struct {
	// Out defaults to stdout.
	Out io.Writer
	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

// Console renders the two-line frame to a terminal. It is redrawn on every
// acquisition attempt: after a failure it keeps showing the last good values
// and adds a note with their age.
type Console struct {
	out   io.Writer
	clock func() time.Time
}

func NewConsole(cfg ConsoleConfig) *Console {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Console{out: out, clock: clock}
}

func (c *Console) Redraw(e model.CacheEntry, attemptErr error) {
	lines := Frame(e)
	styled := []string{
		tempStyle(model.Classify(e.Reading.Temperature)).Render(lines[0]),
		humStyle.Render(lines[1]),
	}
	if attemptErr != nil {
		styled = append(styled, dimStyle.Render(c.staleNote(e)))
	}
	fmt.Fprintln(c.out, lipgloss.JoinVertical(lipgloss.Left, styled...))
}

func (c *Console) staleNote(e model.CacheEntry) string {
	if e.UpdatedAt.IsZero() {
		return "sensor unavailable, no reading yet"
	}
	return fmt.Sprintf("sensor unavailable, showing reading from %s ago", e.Age(c.clock()).Round(time.Second))
}
