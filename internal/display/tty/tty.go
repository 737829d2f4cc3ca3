// Package tty presents frames in the terminal with Bubbletea. A terminal
// cannot change its glyph size, so the computed font size is shown in the
// header and each row is clipped to the terminal width instead of wrapping.
package tty

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/junsooki/asciiview/internal/display"
	"github.com/junsooki/asciiview/internal/theme"
)

const (
	fallbackCellW = 8
	fallbackCellH = 16
	refreshEvery  = time.Second / 30
)

// Display is a terminal surface.
type Display struct {
	*display.State

	themes *theme.Registry
	cellW  float64
	cellH  float64
	closed atomic.Bool
	opts   []tea.ProgramOption
}

// Option configures a Display.
type Option func(*Display)

// WithCellSize overrides terminal cell size detection.
func WithCellSize(w, h float64) Option {
	return func(d *Display) { d.cellW, d.cellH = w, h }
}

// WithProgramOptions passes options through to tea.NewProgram.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(d *Display) { d.opts = append(d.opts, opts...) }
}

// New creates a terminal surface. nil themes uses the built-in palettes.
func New(themes *theme.Registry, opts ...Option) *Display {
	if themes == nil {
		themes = theme.NewRegistry()
	}
	d := &Display{themes: themes}
	for _, opt := range opts {
		opt(d)
	}
	if d.cellW <= 0 || d.cellH <= 0 {
		if w, h, err := detectCellSize(); err == nil {
			d.cellW, d.cellH = w, h
		} else {
			d.cellW, d.cellH = fallbackCellW, fallbackCellH
		}
	}
	d.State = display.NewState(80*d.cellW, 24*d.cellH)
	return d
}

// Run starts the Bubbletea program on the alternate screen.
func (d *Display) Run() error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, d.opts...)
	_, err := tea.NewProgram(newModel(d), opts...).Run()
	return err
}

// Close makes Run return on the next refresh.
func (d *Display) Close() {
	d.closed.Store(true)
}

type refreshMsg time.Time

func refresh() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

type model struct {
	d      *Display
	width  int
	height int
}

func newModel(d *Display) model {
	return model{d: d, width: 80, height: 24}
}

func (m model) Init() tea.Cmd {
	return refresh()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.d.SetViewport(float64(msg.Width)*m.d.cellW, float64(msg.Height)*m.d.cellH)
	case tea.KeyMsg:
		// Quitting is the only key handled; frames take no input.
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case refreshMsg:
		if m.d.closed.Load() {
			return m, tea.Quit
		}
		return m, refresh()
	}
	return m, nil
}

func (m model) View() string {
	snap := m.d.Snapshot()
	pal := m.d.themes.Lookup(snap.Classes)

	status := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(snap.StatusColor)).Render(snap.StatusLabel)
	info := fmt.Sprintf("%s  FONT: %.1fpx", snap.Readout, snap.FontSize)
	gap := m.width - lipgloss.Width(status) - lipgloss.Width(info)
	if gap < 1 {
		gap = 1
	}
	header := ansi.Truncate(status+strings.Repeat(" ", gap)+info, m.width, "")

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Foreground)).
		Background(lipgloss.Color(pal.Background))

	var b strings.Builder
	b.WriteString(header)
	for _, line := range clipRows(snap.Content, m.width, m.height-1) {
		b.WriteByte('\n')
		b.WriteString(body.Render(line))
	}
	return b.String()
}

// clipRows splits content into at most maxRows lines, each truncated to
// width cells.
func clipRows(content string, width, maxRows int) []string {
	if content == "" || width <= 0 || maxRows <= 0 {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > maxRows {
		lines = lines[:maxRows]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return lines
}
