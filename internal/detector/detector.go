package detector

import "gocv.io/x/gocv"

// Detector defines the interface for face landmark detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns landmarks for each detected
	// face. Returns an empty slice if no faces are detected.
	Detect(frame *gocv.Mat) ([]FaceLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for face landmark detection.
type Config struct {
	// StaticMode treats every frame as an independent image instead of a
	// video stream, disabling landmark tracking between frames.
	StaticMode bool

	// MaxFaces is the maximum number of faces to detect (default: 1).
	MaxFaces int

	// RefineLandmarks enables the refined model that adds the ten iris
	// landmarks (indices 468-477).
	RefineLandmarks bool

	// DetectionCon is the minimum detection confidence threshold (0.0-1.0).
	DetectionCon float64

	// TrackingCon is the minimum tracking confidence threshold (0.0-1.0).
	TrackingCon float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		StaticMode:      false,
		MaxFaces:        1,
		RefineLandmarks: false,
		DetectionCon:    0.5,
		TrackingCon:     0.5,
	}
}
