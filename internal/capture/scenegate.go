package capture

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Scene gate constants.
const (
	// gateBlurSize is the kernel size for the noise-reduction blur.
	gateBlurSize = 11
	// gateDiffThreshold is the binary threshold for per-pixel change.
	gateDiffThreshold = 20
	// gateLearnRate is how quickly the background model absorbs the scene.
	gateLearnRate = 0.1
)

// SceneGate decides whether a frame is worth running detection on by
// comparing it against a running-average background model. A static scene
// keeps converging into the background and stops registering as changed.
type SceneGate struct {
	threshold  float64
	background gocv.Mat
	primed     bool
	mu         sync.Mutex
}

// NewSceneGate creates a SceneGate. The threshold is the percentage of pixels
// that must differ from the background for the scene to count as changed; for
// example 1.0 means 1% of pixels.
func NewSceneGate(threshold float64) *SceneGate {
	return &SceneGate{
		threshold:  threshold,
		background: gocv.NewMat(),
	}
}

// Changed reports whether the frame differs from the background model, and by
// what percentage of pixels. The first frame primes the model and reports
// changed, so a fresh pipeline always runs its first detection.
func (g *SceneGate) Changed(frame *gocv.Mat) (bool, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if frame == nil || frame.Empty() {
		return false, 0
	}

	gray := gocv.NewMat()
	defer gray.Close()

	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Pt(gateBlurSize, gateBlurSize), 0, 0, gocv.BorderDefault)

	if !g.primed {
		blurred.CopyTo(&g.background)
		g.primed = true
		return true, 100
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, g.background, &diff)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(diff, &mask, gateDiffThreshold, 255, gocv.ThresholdBinary)

	changed := gocv.CountNonZero(mask)
	total := mask.Rows() * mask.Cols()
	percent := float64(changed) / float64(total) * 100.0

	// Fold the frame into the background model.
	updated := gocv.NewMat()
	defer updated.Close()
	gocv.AddWeighted(blurred, gateLearnRate, g.background, 1-gateLearnRate, 0, &updated)
	updated.CopyTo(&g.background)

	return percent > g.threshold, percent
}

// Reset discards the background model; the next frame primes a fresh one.
func (g *SceneGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.background.Empty() {
		g.background.Close()
		g.background = gocv.NewMat()
	}
	g.primed = false
}

// Close releases resources used by the scene gate.
func (g *SceneGate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.background.Empty() {
		g.background.Close()
		g.background = gocv.NewMat()
	}
	g.primed = false
}

// SetThreshold sets the changed-pixel percentage threshold.
// Values less than or equal to 0 are ignored.
func (g *SceneGate) SetThreshold(threshold float64) {
	if threshold <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.threshold = threshold
}
