package render

// Surface is the set of output ports a frame is rendered onto. The renderer
// only ever writes to it; Viewport is the one value read back.
type Surface interface {
	SetContent(text string)
	SetClasses(classes []string)
	SetFontSize(px float64)
	SetStatus(label, color string)
	SetReadout(text string)

	// Viewport returns the current drawable width and height in pixels.
	Viewport() (width, height float64)
}

// Batcher is implemented by surfaces that can take a whole frame's writes as
// one batch. Readers of such a surface never observe a partly applied frame.
type Batcher interface {
	Batch(apply func())
}
