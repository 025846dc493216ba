package canvas

import "image/color"

// CircleOp records a single Circle call on a Recorder.
type CircleOp struct {
	X, Y, R int
	Color   color.RGBA
}

// LineOp records a single Line call on a Recorder.
type LineOp struct {
	X0, Y0, X1, Y1 int
	Color          color.RGBA
}

// Recorder is a test implementation of the Surface interface that records
// every drawing operation instead of writing pixels.
type Recorder struct {
	Circles []CircleOp
	Lines   []LineOp
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Circle records a circle operation.
func (r *Recorder) Circle(x, y, radius int, c color.RGBA) {
	r.Circles = append(r.Circles, CircleOp{X: x, Y: y, R: radius, Color: c})
}

// Line records a line operation.
func (r *Recorder) Line(x0, y0, x1, y1 int, c color.RGBA) {
	r.Lines = append(r.Lines, LineOp{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c})
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Circles = nil
	r.Lines = nil
}
