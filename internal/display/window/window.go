// Package window presents frames in a desktop window using Ebitengine.
package window

import (
	"bytes"
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/junsooki/asciiview/internal/display"
	"github.com/junsooki/asciiview/internal/theme"
)

const (
	headerFontSize = 14
	headerPad      = 6
)

// Display renders frames in a window. It implements display.Display and
// ebiten.Game.
type Display struct {
	*display.State

	opts   display.Options
	themes *theme.Registry
	source *text.GoTextFaceSource
	closed atomic.Bool
}

// New creates a window surface. Palettes are resolved from themes; nil uses
// the built-in palettes.
func New(opts display.Options, themes *theme.Registry) (*Display, error) {
	opts = opts.WithDefaults()
	if themes == nil {
		themes = theme.NewRegistry()
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Display{
		State:  display.NewState(float64(opts.WindowWidth), float64(opts.WindowHeight)),
		opts:   opts,
		themes: themes,
		source: src,
	}, nil
}

// Run starts the Ebitengine game loop. Must be called from the main goroutine.
func (d *Display) Run() error {
	ebiten.SetWindowSize(d.opts.WindowWidth, d.opts.WindowHeight)
	ebiten.SetWindowTitle(d.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(d)
}

// Close makes Run return after the current tick.
func (d *Display) Close() {
	d.closed.Store(true)
}

// --- ebiten.Game interface ---

func (d *Display) Update() error {
	if d.closed.Load() {
		return ebiten.Termination
	}
	return nil
}

func (d *Display) Draw(screen *ebiten.Image) {
	snap := d.Snapshot()
	pal := d.themes.Lookup(snap.Classes)

	screen.Fill(theme.HexOrBlack(pal.Background))

	sw := float64(screen.Bounds().Dx())
	face := &text.GoTextFace{Source: d.source, Size: snap.FontSize}
	lineSpacing := snap.FontSize * d.opts.LineHeight
	tw, _ := text.Measure(snap.Content, face, lineSpacing)
	offsetX, offsetY := contentOffset(sw, tw)

	if pal.Glow != "" {
		op := &text.DrawOptions{}
		op.LineSpacing = lineSpacing
		op.GeoM.Translate(offsetX+1, offsetY+1)
		op.ColorScale.ScaleWithColor(theme.HexOrBlack(pal.Glow))
		text.Draw(screen, snap.Content, face, op)
	}
	op := &text.DrawOptions{}
	op.LineSpacing = lineSpacing
	op.GeoM.Translate(offsetX, offsetY)
	op.ColorScale.ScaleWithColor(theme.HexOrBlack(pal.Foreground))
	text.Draw(screen, snap.Content, face, op)

	d.drawHeader(screen, snap, sw)
}

func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (d *Display) drawHeader(screen *ebiten.Image, snap display.Snapshot, screenW float64) {
	face := &text.GoTextFace{Source: d.source, Size: headerFontSize}

	if snap.StatusLabel != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(headerPad, headerPad)
		op.ColorScale.ScaleWithColor(statusColor(snap.StatusColor))
		text.Draw(screen, snap.StatusLabel, face, op)
	}
	if snap.Readout != "" {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(screenW-headerPad, headerPad)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, snap.Readout, face, op)
	}
}

// contentOffset centers a block of the given width horizontally, below the
// header strip.
func contentOffset(viewW, textW float64) (offsetX, offsetY float64) {
	offsetX = (viewW - textW) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	offsetY = headerFontSize + 2*headerPad
	return
}

func statusColor(s string) color.Color {
	c, err := theme.ParseHex(s)
	if err != nil {
		return color.White
	}
	return c
}
