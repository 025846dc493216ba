package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mukham/internal/canvas"
)

// runPipeline is the frame-synchronous driver loop.
//
// Per frame:
// 1. Read a frame from the camera
// 2. Optional scene gate: a static scene skips the detection step
// 3. Process: rate-limited detection into the shared state
// 4. Draw the cached landmarks and contours onto the frame
// 5. Show the annotated frame and honor snapshot requests
//
// Detection cadence is owned by the overlay; this loop only paces frames.
func (a *App) runPipeline(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	var window *gocv.Window
	if a.config.Display {
		window = gocv.NewWindow("Mukham")
		defer window.Close()
	}

	ticker := time.NewTicker(time.Second / time.Duration(a.config.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			a.processFrame(frame, window)
			frame.Close()
		}
	}
}

// processFrame runs one detect-and-draw pass over a single frame.
func (a *App) processFrame(frame *gocv.Mat, window *gocv.Window) {
	runDetect := true
	if a.gate != nil {
		changed, _ := a.gate.Changed(frame)
		runDetect = changed
	}

	if runDetect {
		if err := a.Overlay().Process(frame); err != nil {
			log.Printf("Error detecting faces: %v", err)
		}
	}

	// Draw every frame from whatever the last detection pass wrote.
	a.Overlay().Draw(canvas.NewMatSurface(frame))

	if a.takeSnapshotRequest() && a.snapshots != nil {
		if path, err := a.snapshots.Save(frame); err != nil {
			log.Printf("Error saving snapshot: %v", err)
		} else {
			log.Printf("Saved snapshot %s", path)
		}
	}

	if window != nil {
		window.IMShow(*frame)
		switch window.WaitKey(1) {
		case 's':
			a.RequestSnapshot()
		case 'q', 27: // esc
			a.SetEnabled(false)
		}
	}
}
