package detector

import (
	"math"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	faces []FaceLandmarks
	err   error
	calls int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFaces sets the faces that will be returned by Detect.
func (m *MockDetector) SetFaces(faces []FaceLandmarks) {
	m.faces = faces
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Calls returns how many times Detect has been invoked.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Detect returns the pre-configured faces or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]FaceLandmarks, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.faces, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// CenteredFaceLandmarks returns a preset FaceLandmarks describing a face
// roughly centered in the frame. The points are deterministic, finite, and
// inside the unit square, which is all the pipeline tests rely on.
func CenteredFaceLandmarks() FaceLandmarks {
	var lm FaceLandmarks

	// Spread the landmarks over an oval around the frame center. Exact
	// anatomy does not matter for tests; the anchor points get plausible
	// positions and everything else fills the interior deterministically.
	for i := 0; i < NumLandmarks; i++ {
		angle := 2 * math.Pi * float64(i) / NumLandmarks
		lm.Points[i] = Point3D{
			X: 0.5 + 0.2*math.Cos(angle),
			Y: 0.5 + 0.25*math.Sin(angle),
			Z: -0.03 + 0.0001*float64(i),
		}
	}

	lm.Points[NoseTip] = Point3D{X: 0.5, Y: 0.5, Z: -0.06}
	lm.Points[ForeheadCenter] = Point3D{X: 0.5, Y: 0.28, Z: -0.02}
	lm.Points[ChinBottom] = Point3D{X: 0.5, Y: 0.74, Z: -0.01}
	lm.Points[RightEyeOuter] = Point3D{X: 0.36, Y: 0.42, Z: -0.02}
	lm.Points[LeftEyeOuter] = Point3D{X: 0.64, Y: 0.42, Z: -0.02}

	return lm
}

// OffCenterFaceLandmarks returns a second preset face shifted toward the top
// left of the frame, for multi-face tests.
func OffCenterFaceLandmarks() FaceLandmarks {
	base := CenteredFaceLandmarks()

	var lm FaceLandmarks
	for i := 0; i < NumLandmarks; i++ {
		lm.Points[i] = Point3D{
			X: base.Points[i].X*0.5 + 0.05,
			Y: base.Points[i].Y*0.5 + 0.05,
			Z: base.Points[i].Z,
		}
	}

	return lm
}
