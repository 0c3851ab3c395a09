package render

const depthFloor = -1e30

// Cell is one character cell of a rendered frame. Colored marks edge
// cells that carry an RGB color; fill shading stays monochrome and
// the terminal writer emits it without an escape sequence.
type Cell struct {
	Ch      byte
	R, G, B uint8
	Colored bool
}

// Frame is the render target: a character grid plus a depth buffer,
// both row-major with row 0 at the top. Depth holds negated camera z
// in perspective mode and raw model z in orthographic mode, so higher
// always means closer. Frames are scratch space reused across frames.
type Frame struct {
	W, H  int
	Cells []Cell
	Depth []float64
}

func NewFrame(w, h int) *Frame {
	f := &Frame{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
		Depth: make([]float64, w*h),
	}
	f.Clear()
	return f
}

// Clear resets every cell to a blank and every depth to the floor.
func (f *Frame) Clear() {
	for i := range f.Cells {
		f.Cells[i] = Cell{Ch: ' '}
	}
	for i := range f.Depth {
		f.Depth[i] = depthFloor
	}
}

// At returns the cell at (x, y).
func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.W+x]
}

// DepthAt returns the depth value at (x, y).
func (f *Frame) DepthAt(x, y int) float64 {
	return f.Depth[y*f.W+x]
}
