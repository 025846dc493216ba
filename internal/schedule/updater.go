// Package schedule provides the periodic-invocation helper used to throttle
// expensive per-frame work such as model inference.
package schedule

import "gocv.io/x/gocv"

// FrameFunc is a per-frame operation that an Updater can throttle.
type FrameFunc func(frame *gocv.Mat) error

// Updater calls a wrapped function at most once every N invocations. The first
// invocation always runs so a freshly constructed pipeline produces results
// immediately; the wrapped function is skipped for the N-1 invocations that
// follow each run.
type Updater struct {
	fn    FrameFunc
	every int
	count int
}

// NewUpdater wraps fn so that it runs on every Nth invocation. Values of every
// below 1 are treated as 1 (run on every invocation).
func NewUpdater(fn FrameFunc, every int) *Updater {
	if every < 1 {
		every = 1
	}
	return &Updater{fn: fn, every: every}
}

// Update counts an invocation and runs the wrapped function if the cadence is
// due. Skipped invocations return nil.
func (u *Updater) Update(frame *gocv.Mat) error {
	due := u.count%u.every == 0
	u.count++
	if !due {
		return nil
	}
	return u.fn(frame)
}

// Every returns the configured invocation cadence.
func (u *Updater) Every() int {
	return u.every
}

// Reset restarts the cadence so the next invocation runs the wrapped function.
func (u *Updater) Reset() {
	u.count = 0
}
