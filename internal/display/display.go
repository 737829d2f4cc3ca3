// Package display holds the surface state shared by the window and terminal
// presentations.
package display

import "github.com/junsooki/asciiview/internal/render"

// Display is a render.Surface with its own presentation loop.
type Display interface {
	render.Surface

	// Run blocks presenting the surface until Close is called or the user
	// closes the view. Must be called from the main goroutine.
	Run() error
	// Close asks Run to return.
	Close()
}

// Options configure a display surface.
type Options struct {
	Title        string
	WindowWidth  int
	WindowHeight int
	// LineHeight is the line pitch as a multiple of the font size.
	LineHeight float64
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Title:        "asciiview",
		WindowWidth:  1280,
		WindowHeight: 720,
		LineHeight:   1.15,
	}
}

// WithDefaults fills zero fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.WindowWidth <= 0 {
		o.WindowWidth = d.WindowWidth
	}
	if o.WindowHeight <= 0 {
		o.WindowHeight = d.WindowHeight
	}
	if o.LineHeight <= 0 {
		o.LineHeight = d.LineHeight
	}
	return o
}
