// Package canvas abstracts the pixel-drawing surface the renderer writes to.
package canvas

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// White is the default overlay color.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Surface defines the drawing operations the renderer needs.
type Surface interface {
	// Circle draws a filled circle of radius r centered at (x, y).
	Circle(x, y, r int, c color.RGBA)

	// Line draws a one-pixel line from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1 int, c color.RGBA)
}

// MatSurface draws directly onto a gocv Mat, typically the live video frame.
type MatSurface struct {
	mat *gocv.Mat
}

// NewMatSurface wraps a Mat as a drawing surface. The caller retains
// ownership of the Mat.
func NewMatSurface(mat *gocv.Mat) *MatSurface {
	return &MatSurface{mat: mat}
}

// Circle draws a filled circle onto the Mat.
func (s *MatSurface) Circle(x, y, r int, c color.RGBA) {
	gocv.Circle(s.mat, image.Pt(x, y), r, c, -1)
}

// Line draws a line onto the Mat.
func (s *MatSurface) Line(x0, y0, x1, y1 int, c color.RGBA) {
	gocv.Line(s.mat, image.Pt(x0, y0), image.Pt(x1, y1), c, 1)
}
