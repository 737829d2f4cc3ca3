package render

import "fmt"

const (
	// BaseClass is carried by the display surface at all times.
	BaseClass = "ascii-container"
	// ThemeClassPrefix is prepended to a frame's theme identifier.
	ThemeClassPrefix = "theme-"
)

// Classes returns the class list for a frame: the base class, plus one theme
// class when theme is set.
func Classes(theme string) []string {
	if theme == "" {
		return []string{BaseClass}
	}
	return []string{BaseClass, ThemeClassPrefix + theme}
}

// Readout formats the resolution readout.
func Readout(resolution, rows int) string {
	return fmt.Sprintf("RES: %dx%d", resolution, rows)
}
