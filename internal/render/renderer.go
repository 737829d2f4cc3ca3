package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/junsooki/asciiview/internal/frame"
)

// Renderer applies inbound frames to a Surface. It keeps no state between
// frames: every call derives content, classes and size from the frame and the
// viewport as it is right now.
type Renderer struct {
	surface Surface
	decoder frame.Decoder
	geom    Geometry
	logger  *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDecoder replaces the JSON frame decoder.
func WithDecoder(d frame.Decoder) Option {
	return func(r *Renderer) { r.decoder = d }
}

// WithGeometry sets the sizing constants.
func WithGeometry(g Geometry) Option {
	return func(r *Renderer) { r.geom = g }
}

// WithLogger sets the logger used for discarded frames.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New creates a Renderer writing to surface.
func New(surface Surface, opts ...Option) *Renderer {
	r := &Renderer{
		surface: surface,
		decoder: frame.NewJSONDecoder(),
		geom:    DefaultGeometry(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.geom.Validate(); err != nil {
		r.logger.Warn("invalid geometry, using defaults", "error", err)
		r.geom = DefaultGeometry()
	}
	return r
}

// Geometry returns the sizing constants in use.
func (r *Renderer) Geometry() Geometry {
	return r.geom
}

// OnFrame decodes raw and applies it to the surface. When decoding fails the
// error is returned and the surface is left exactly as it was.
func (r *Renderer) OnFrame(raw []byte) (err error) {
	// Decoder and surface panics become errors so the read loop keeps running.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("render frame: panic: %v", p)
		}
	}()
	f, err := r.decoder.Decode(raw)
	if err != nil {
		return err
	}
	r.Apply(f)
	return nil
}

// Apply renders an already decoded frame. Surfaces implementing Batcher get
// all writes inside a single Batch call.
func (r *Renderer) Apply(f *frame.Frame) {
	content := strings.Join(f.Rows, "\n")
	classes := Classes(f.Theme)
	readout := Readout(f.Resolution, len(f.Rows))

	apply := func() {
		vw, _ := r.surface.Viewport()
		size := r.geom.FontSize(vw, f.Resolution)

		r.surface.SetContent(content)
		r.surface.SetClasses(classes)
		r.surface.SetFontSize(size)
		r.surface.SetReadout(readout)
	}
	if b, ok := r.surface.(Batcher); ok {
		b.Batch(apply)
		return
	}
	apply()
}

// HandleMessage is the transport message callback. Frames that fail to decode
// are logged and dropped; the previous frame stays on screen.
func (r *Renderer) HandleMessage(raw []byte) {
	if err := r.OnFrame(raw); err != nil {
		r.logger.Warn("dropping frame", "error", err, "bytes", len(raw))
	}
}
