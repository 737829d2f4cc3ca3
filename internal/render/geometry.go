package render

import (
	"fmt"
	"math"
)

const (
	DefaultSafetyFactor = 0.95
	DefaultAspect       = 0.6
	DefaultMinFontSize  = 4.0
)

// Geometry derives a font size that fits a frame's columns into the viewport.
type Geometry struct {
	// SafetyFactor undersizes slightly to avoid wrapping at the right edge.
	SafetyFactor float64
	// Aspect is the glyph width to height ratio of the monospace font.
	Aspect float64
	// MinFontSize is the floor applied to every result.
	MinFontSize float64
}

// DefaultGeometry returns the geometry used when nothing is configured.
func DefaultGeometry() Geometry {
	return Geometry{
		SafetyFactor: DefaultSafetyFactor,
		Aspect:       DefaultAspect,
		MinFontSize:  DefaultMinFontSize,
	}
}

// Validate reports a geometry that can never produce a usable size.
func (g Geometry) Validate() error {
	if !(g.SafetyFactor > 0) || math.IsInf(g.SafetyFactor, 0) {
		return fmt.Errorf("safety factor must be positive, got %v", g.SafetyFactor)
	}
	if !(g.Aspect > 0) || math.IsInf(g.Aspect, 0) {
		return fmt.Errorf("aspect must be positive, got %v", g.Aspect)
	}
	if !(g.MinFontSize > 0) || math.IsInf(g.MinFontSize, 0) {
		return fmt.Errorf("min font size must be positive, got %v", g.MinFontSize)
	}
	return nil
}

// CharWidth returns the pixel width available to one column.
func (g Geometry) CharWidth(viewportWidth float64, resolution int) float64 {
	if resolution <= 0 {
		return 0
	}
	return viewportWidth * g.SafetyFactor / float64(resolution)
}

// FontSize returns the font size in pixels for resolution columns across
// viewportWidth pixels. The result is never rounded and never below
// MinFontSize; degenerate inputs return MinFontSize.
func (g Geometry) FontSize(viewportWidth float64, resolution int) float64 {
	size := g.CharWidth(viewportWidth, resolution) / g.Aspect
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return g.MinFontSize
	}
	return math.Max(g.MinFontSize, size)
}
