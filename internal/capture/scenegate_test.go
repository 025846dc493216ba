package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestSceneGate(t *testing.T) {
	t.Run("first frame primes and reports changed", func(t *testing.T) {
		gate := NewSceneGate(1.0)
		defer gate.Close()

		changed, percent := gate.Changed(solidFrame(t, 100))
		if !changed {
			t.Error("priming frame should report changed")
		}
		if percent != 100 {
			t.Errorf("priming percent = %f, want 100", percent)
		}
	})

	t.Run("static scene settles to unchanged", func(t *testing.T) {
		gate := NewSceneGate(1.0)
		defer gate.Close()

		frame := solidFrame(t, 100)
		gate.Changed(frame)

		changed, percent := gate.Changed(frame)
		if changed {
			t.Errorf("identical frame reported changed (%.2f%%)", percent)
		}
	})

	t.Run("large brightness jump reports changed", func(t *testing.T) {
		gate := NewSceneGate(1.0)
		defer gate.Close()

		gate.Changed(solidFrame(t, 20))

		changed, percent := gate.Changed(solidFrame(t, 220))
		if !changed {
			t.Errorf("full-frame jump not detected (%.2f%%)", percent)
		}
	})

	t.Run("nil and empty frames are ignored", func(t *testing.T) {
		gate := NewSceneGate(1.0)
		defer gate.Close()

		if changed, _ := gate.Changed(nil); changed {
			t.Error("nil frame reported changed")
		}

		empty := gocv.NewMat()
		defer empty.Close()
		if changed, _ := gate.Changed(&empty); changed {
			t.Error("empty frame reported changed")
		}
	})

	t.Run("reset forgets the background", func(t *testing.T) {
		gate := NewSceneGate(1.0)
		defer gate.Close()

		frame := solidFrame(t, 100)
		gate.Changed(frame)
		gate.Changed(frame)

		gate.Reset()

		changed, _ := gate.Changed(frame)
		if !changed {
			t.Error("frame after Reset should prime and report changed")
		}
	})

	t.Run("ignores non-positive thresholds", func(t *testing.T) {
		gate := NewSceneGate(1.0)
		defer gate.Close()

		gate.SetThreshold(-5)
		if gate.threshold != 1.0 {
			t.Errorf("threshold = %f, want 1.0", gate.threshold)
		}

		gate.SetThreshold(2.5)
		if gate.threshold != 2.5 {
			t.Errorf("threshold = %f, want 2.5", gate.threshold)
		}
	})
}
