// Package theme maps the display surface's class list onto colors. Frames
// select a theme by identifier; the renderer turns that into a "theme-<id>"
// class, and surfaces look the class up here.
package theme

import (
	"fmt"
	"image/color"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/junsooki/asciiview/internal/render"
)

// Palette holds the colors for one theme, as #rrggbb strings.
type Palette struct {
	Name       string
	Foreground string
	Background string
	// Glow is drawn behind the text; empty disables it.
	Glow string
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks that every set color is a #rrggbb value.
func (p Palette) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("theme: palette has no name")
	}
	for field, v := range map[string]string{
		"foreground": p.Foreground,
		"background": p.Background,
	} {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("theme %q: %s %q is not #rrggbb", p.Name, field, v)
		}
	}
	if p.Glow != "" && !hexColor.MatchString(p.Glow) {
		return fmt.Errorf("theme %q: glow %q is not #rrggbb", p.Name, p.Glow)
	}
	return nil
}

// Registry is a set of palettes keyed by theme identifier.
type Registry struct {
	mu       sync.RWMutex
	palettes map[string]Palette
}

// NewRegistry returns a registry holding the built-in palettes.
func NewRegistry() *Registry {
	r := &Registry{palettes: map[string]Palette{}}
	for _, p := range builtins() {
		r.palettes[p.Name] = p
	}
	return r
}

// Register adds or replaces a palette.
func (r *Registry) Register(p Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.palettes[strings.ToLower(p.Name)] = p
	return nil
}

// Get returns the named palette, falling back to "default".
func (r *Registry) Get(name string) Palette {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.palettes[strings.ToLower(name)]; ok {
		return p
	}
	return r.palettes["default"]
}

// Names returns the registered theme identifiers, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.palettes))
	for n := range r.palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a surface class list to a palette. The first theme class
// wins; a list with only the base class gets the default palette.
func (r *Registry) Lookup(classes []string) Palette {
	for _, c := range classes {
		if c == render.BaseClass {
			continue
		}
		if id, ok := strings.CutPrefix(c, render.ThemeClassPrefix); ok && id != "" {
			return r.Get(id)
		}
	}
	return r.Get("default")
}

// ParseHex converts a #rrggbb string to a color.
func ParseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("theme: parse color %q: %w", s, err)
	}
	return c, nil
}

// HexOrBlack is ParseHex for values that were already validated. Invalid input
// yields black.
func HexOrBlack(s string) color.Color {
	c, err := ParseHex(s)
	if err != nil {
		return color.Black
	}
	return c
}
