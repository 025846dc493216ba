// Package app provides the frame-synchronous driver loop for the Mukham face
// mesh overlay toolkit.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/mukham/internal/capture"
	"github.com/ayusman/mukham/internal/detector"
	"github.com/ayusman/mukham/internal/export"
	"github.com/ayusman/mukham/internal/overlay"
)

// Config holds configuration options for the application.
type Config struct {
	CameraID int
	Width    int
	Height   int
	// FPS paces the frame loop; detection runs at the overlay's cadence.
	FPS int

	Overlay overlay.Config

	// MotionThreshold enables the scene-change gate when positive.
	MotionThreshold float64

	// Display opens a preview window for the annotated frames.
	Display bool

	// SnapshotDir enables on-demand snapshots of annotated frames.
	SnapshotDir string
}

// App orchestrates the capture -> detect -> draw loop.
type App struct {
	config    Config
	camera    capture.Camera
	gate      *capture.SceneGate
	mesh      *overlay.FaceMesh
	snapshots *export.Snapshotter

	enabled     bool
	snapshotReq bool
	mu          sync.RWMutex
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// New creates a new App instance with the given configuration.
// It prefers the MediaPipe detector and falls back to the mock detector when
// the sidecar script is not available.
func New(config Config) *App {
	if config.FPS < 1 {
		config.FPS = capture.DefaultFPS
	}

	a := &App{
		config:  config,
		camera:  capture.NewCameraWithSize(config.CameraID, config.Width, config.Height),
		enabled: true,
	}

	if config.MotionThreshold > 0 {
		a.gate = capture.NewSceneGate(config.MotionThreshold)
	}

	if config.SnapshotDir != "" {
		snaps, err := export.NewSnapshotter(config.SnapshotDir)
		if err != nil {
			log.Printf("Snapshots disabled: %v", err)
		} else {
			a.snapshots = snaps
		}
	}

	var det detector.Detector
	if mp, err := detector.NewMediaPipeDetector(config.Overlay.Detector); err == nil {
		det = mp
		log.Println("Using MediaPipe face mesh detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		det = detector.NewMockDetector()
	}

	a.mesh = overlay.New(config.Overlay, det)

	return a
}

// SetEnabled enables or disables the overlay processing.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether overlay processing is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetCamera replaces the camera implementation. Must be called before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetDetector replaces the detector behind the overlay. Must be called before
// Start.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mesh = overlay.New(a.config.Overlay, d)
}

// RequestSnapshot asks the pipeline to save the next annotated frame.
func (a *App) RequestSnapshot() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snapshotReq = true
}

// Overlay returns the face mesh overlay.
func (a *App) Overlay() *overlay.FaceMesh {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mesh
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Start opens the camera and begins the frame loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(a.config.FPS)

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runPipeline(a.stopCh, a.doneCh)

	log.Println("Overlay pipeline started")
	return nil
}

// Stop halts the frame loop and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh == nil {
		a.mu.Unlock()
		return
	}
	close(a.stopCh)
	done := a.doneCh
	a.stopCh = nil
	a.doneCh = nil
	a.mu.Unlock()

	// Wait for the loop to finish before tearing resources down.
	<-done

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	if a.gate != nil {
		a.gate.Close()
	}

	if err := a.mesh.Close(); err != nil {
		log.Printf("Error closing detector: %v", err)
	}

	log.Println("Overlay pipeline stopped")
}

func (a *App) takeSnapshotRequest() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	req := a.snapshotReq
	a.snapshotReq = false
	return req
}
