// Package overlay binds the external face landmark model to the shared
// simulation state and renders the cached landmarks onto a drawing surface.
package overlay

import (
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mukham/internal/canvas"
	"github.com/ayusman/mukham/internal/detector"
	"github.com/ayusman/mukham/internal/mesh"
	"github.com/ayusman/mukham/internal/schedule"
	"github.com/ayusman/mukham/internal/state"
)

// Default drawing parameters.
const (
	// DefaultDetectRate is how many frames pass between detection runs.
	DefaultDetectRate = 10
	// DefaultPointRadius is the landmark circle radius in pixels.
	DefaultPointRadius = 5
)

// Config holds configuration options for the face mesh overlay.
type Config struct {
	// Detector configures the external landmark model.
	Detector detector.Config

	// DetectRate is the number of frames between detection runs
	// (default: 10). Drawing still happens every frame from cached state.
	DetectRate int

	// PointRadius is the landmark circle radius in pixels (default: 5).
	PointRadius int

	// PointColor and LineColor default to white.
	PointColor color.RGBA
	LineColor  color.RGBA
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Detector:    detector.DefaultConfig(),
		DetectRate:  DefaultDetectRate,
		PointRadius: DefaultPointRadius,
		PointColor:  canvas.White,
		LineColor:   canvas.White,
	}
}

// FaceMesh adapts the external landmark detector into the toolkit: it owns
// the detector configuration, runs detection on a cadence, reshapes results
// into the shared state store, and rasterizes points and contour lines.
type FaceMesh struct {
	config  Config
	det     detector.Detector
	topo    *mesh.Topology
	state   *state.FaceMesh
	updater *schedule.Updater

	// scratch buffers reused between detection passes
	norm [][]state.Vec3
	px   [][]state.Vec2
}

// New creates a FaceMesh overlay around an injected detector. The detection
// cadence helper is internal but behaves as an external collaborator: Process
// defers to it, Detect bypasses it.
func New(config Config, det detector.Detector) *FaceMesh {
	if config.Detector.MaxFaces < 1 {
		config.Detector.MaxFaces = 1
	}
	if config.DetectRate < 1 {
		config.DetectRate = DefaultDetectRate
	}
	if config.PointRadius < 1 {
		config.PointRadius = DefaultPointRadius
	}
	if config.PointColor == (color.RGBA{}) {
		config.PointColor = canvas.White
	}
	if config.LineColor == (color.RGBA{}) {
		config.LineColor = canvas.White
	}

	maxFaces := config.Detector.MaxFaces

	norm := make([][]state.Vec3, maxFaces)
	px := make([][]state.Vec2, maxFaces)
	for i := range norm {
		norm[i] = make([]state.Vec3, mesh.NumLandmarks)
		px[i] = make([]state.Vec2, mesh.NumLandmarks)
	}

	f := &FaceMesh{
		config: config,
		det:    det,
		topo:   mesh.NewTopology(),
		state:  state.NewFaceMesh(maxFaces, mesh.NumLandmarks),
		norm:   norm,
		px:     px,
	}
	f.updater = schedule.NewUpdater(f.Detect, config.DetectRate)

	return f
}

// State returns the shared coordinate store the overlay writes into.
func (f *FaceMesh) State() *state.FaceMesh {
	return f.state
}

// Topology returns the connection tables used for drawing.
func (f *FaceMesh) Topology() *mesh.Topology {
	return f.topo
}

// Detected returns the detected-count flag from the last detection pass.
func (f *FaceMesh) Detected() int {
	return f.state.Detected()
}

// Process counts a frame and runs detection if the cadence is due. This is
// the per-frame entry point; callers supply the cadence via Config.DetectRate.
func (f *FaceMesh) Process(frame *gocv.Mat) error {
	return f.updater.Update(frame)
}

// Detect runs the external model on a frame and caches the results.
//
// On success the shared arrays hold, for each detected face, the mirrored
// normalized coordinates (1-x, 1-y, 1-z) and the pixel coordinates
// (W*(1-x), H*(1-y)). When no face is found the arrays are zeroed and the
// detected-count is set to the "none" sentinel. Detector transport errors
// propagate and leave the state untouched.
func (f *FaceMesh) Detect(frame *gocv.Mat) error {
	if frame == nil || frame.Empty() {
		return nil
	}

	faces, err := f.det.Detect(frame)
	if err != nil {
		return err
	}

	if len(faces) == 0 {
		f.state.Fill(0)
		f.state.SetDetected(state.NoneDetected)
		return nil
	}

	maxFaces := f.config.Detector.MaxFaces
	if len(faces) > maxFaces {
		faces = faces[:maxFaces]
	}

	width := float32(frame.Cols())
	height := float32(frame.Rows())

	for i := range f.norm {
		if i >= len(faces) {
			// Slots beyond the detected count stay zero.
			for j := range f.norm[i] {
				f.norm[i][j] = state.Vec3{}
				f.px[i][j] = state.Vec2{}
			}
			continue
		}

		for j := 0; j < mesh.NumLandmarks; j++ {
			lm := faces[i].Points[j]
			f.norm[i][j] = state.Vec3{
				X: float32(1 - lm.X),
				Y: float32(1 - lm.Y),
				Z: float32(1 - lm.Z),
			}
			f.px[i][j] = state.Vec2{
				X: width * float32(1-lm.X),
				Y: height * float32(1-lm.Y),
			}
		}
	}

	if err := f.state.Set(f.norm, f.px); err != nil {
		return err
	}
	f.state.SetDetected(len(faces))

	return nil
}

// Draw renders the cached landmarks onto a surface: a filled circle per
// landmark, then a line per contour connection. Draws nothing when the last
// detection pass found no faces.
func (f *FaceMesh) Draw(surface canvas.Surface) {
	n := f.state.Detected()
	if n <= 0 {
		return
	}
	if n > f.state.MaxFaces() {
		n = f.state.MaxFaces()
	}

	for i := 0; i < n; i++ {
		f.drawLandmarks(surface, i)
		f.drawContours(surface, i)
	}
}

// drawLandmarks draws a filled circle at every landmark of one face.
func (f *FaceMesh) drawLandmarks(surface canvas.Surface, face int) {
	for j := 0; j < mesh.NumLandmarks; j++ {
		p := f.state.Px(face, j)
		surface.Circle(int(p.X), int(p.Y), f.config.PointRadius, f.config.PointColor)
	}
}

// drawContours draws a line for every contour connection of one face.
func (f *FaceMesh) drawContours(surface canvas.Surface, face int) {
	for _, c := range f.topo.Contours {
		a := f.state.Px(face, c.A)
		b := f.state.Px(face, c.B)
		surface.Line(int(a.X), int(a.Y), int(b.X), int(b.Y), f.config.LineColor)
	}
}

// Close releases the underlying detector.
func (f *FaceMesh) Close() error {
	return f.det.Close()
}
