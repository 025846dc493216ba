// Package detector provides face landmark detection interfaces and types.
package detector

import "math"

// Face landmark indices following MediaPipe convention. Only the handful of
// anchor points referenced elsewhere are named; the full topology lives in the
// mesh package.
// See: https://developers.google.com/mediapipe/solutions/vision/face_landmarker
const (
	LipsTop         = 0
	NoseTip         = 1
	NoseBottom      = 2
	ForeheadCenter  = 10
	LipsBottom      = 17
	RightEyeOuter   = 33
	RightEyeInner   = 133
	ChinBottom      = 152
	LeftEyeInner    = 362
	LeftEyeOuter    = 263
	RightIrisCenter = 468
	LeftIrisCenter  = 473

	// NumLandmarks is the fixed landmark count per face. The last ten entries
	// are the iris points, populated only when refinement is enabled.
	NumLandmarks = 478
)

// Point3D represents a 3D point with x, y, z coordinates. Model output is
// normalized to [0,1] in x and y, with z roughly centered on the head.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// FaceLandmarks represents the 478 face landmarks detected by the model.
type FaceLandmarks struct {
	Points [NumLandmarks]Point3D `json:"points"`
}

// Centroid returns the mean position of all landmarks.
func (f *FaceLandmarks) Centroid() Point3D {
	var c Point3D
	for i := 0; i < NumLandmarks; i++ {
		c.X += f.Points[i].X
		c.Y += f.Points[i].Y
		c.Z += f.Points[i].Z
	}
	c.X /= NumLandmarks
	c.Y /= NumLandmarks
	c.Z /= NumLandmarks
	return c
}

// BoundingBox returns the min and max corners of the axis-aligned box
// enclosing all landmarks.
func (f *FaceLandmarks) BoundingBox() (min Point3D, max Point3D) {
	min = Point3D{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = Point3D{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}

	for i := 0; i < NumLandmarks; i++ {
		p := f.Points[i]
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	return min, max
}
