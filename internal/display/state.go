package display

import (
	"sync"

	"github.com/junsooki/asciiview/internal/render"
)

// State holds everything the renderer writes to a surface. Writes come from
// the transport goroutine and reads from the presentation loop, so every
// access is locked. Batch holds frameMu for a whole frame and Snapshot
// waits on it, so a snapshot never mixes two frames.
type State struct {
	frameMu sync.RWMutex

	mu          sync.Mutex
	content     string
	classes     []string
	fontSize    float64
	statusLabel string
	statusColor string
	readout     string
	width       float64
	height      float64
}

// Snapshot is a copy of a surface's state at one instant.
type Snapshot struct {
	Content     string
	Classes     []string
	FontSize    float64
	StatusLabel string
	StatusColor string
	Readout     string
}

// NewState returns a state with the base class, the minimum font size and
// the given viewport.
func NewState(width, height float64) *State {
	return &State{
		classes:  []string{render.BaseClass},
		fontSize: render.DefaultMinFontSize,
		width:    width,
		height:   height,
	}
}

// Batch runs apply while holding off Snapshot. The setters called from
// apply take only the field lock, so apply must not call Batch or Snapshot.
func (s *State) Batch(apply func()) {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	apply()
}

func (s *State) SetContent(text string) {
	s.mu.Lock()
	s.content = text
	s.mu.Unlock()
}

func (s *State) SetClasses(classes []string) {
	c := append([]string(nil), classes...)
	s.mu.Lock()
	s.classes = c
	s.mu.Unlock()
}

func (s *State) SetFontSize(px float64) {
	s.mu.Lock()
	s.fontSize = px
	s.mu.Unlock()
}

func (s *State) SetStatus(label, color string) {
	s.mu.Lock()
	s.statusLabel = label
	s.statusColor = color
	s.mu.Unlock()
}

func (s *State) SetReadout(text string) {
	s.mu.Lock()
	s.readout = text
	s.mu.Unlock()
}

func (s *State) Viewport() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// SetViewport records the drawable size reported by the presentation loop.
func (s *State) SetViewport(width, height float64) {
	s.mu.Lock()
	s.width = width
	s.height = height
	s.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.frameMu.RLock()
	defer s.frameMu.RUnlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Content:     s.content,
		Classes:     append([]string(nil), s.classes...),
		FontSize:    s.fontSize,
		StatusLabel: s.statusLabel,
		StatusColor: s.statusColor,
		Readout:     s.readout,
	}
}
