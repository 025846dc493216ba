package schedule

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func TestUpdater_Cadence(t *testing.T) {
	t.Run("runs on the first invocation", func(t *testing.T) {
		calls := 0
		u := NewUpdater(func(*gocv.Mat) error { calls++; return nil }, 10)

		if err := u.Update(nil); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("runs once every N invocations", func(t *testing.T) {
		calls := 0
		u := NewUpdater(func(*gocv.Mat) error { calls++; return nil }, 3)

		for i := 0; i < 9; i++ {
			u.Update(nil)
		}
		if calls != 3 {
			t.Errorf("calls = %d after 9 invocations at every=3, want 3", calls)
		}
	})

	t.Run("every=1 runs on every invocation", func(t *testing.T) {
		calls := 0
		u := NewUpdater(func(*gocv.Mat) error { calls++; return nil }, 1)

		for i := 0; i < 5; i++ {
			u.Update(nil)
		}
		if calls != 5 {
			t.Errorf("calls = %d, want 5", calls)
		}
	})

	t.Run("cadence below one is clamped to one", func(t *testing.T) {
		u := NewUpdater(func(*gocv.Mat) error { return nil }, 0)
		if u.Every() != 1 {
			t.Errorf("Every() = %d, want 1", u.Every())
		}
	})
}

func TestUpdater_SkippedInvocationsReturnNil(t *testing.T) {
	wantErr := errors.New("model failed")
	u := NewUpdater(func(*gocv.Mat) error { return wantErr }, 2)

	if err := u.Update(nil); !errors.Is(err, wantErr) {
		t.Errorf("first Update() error = %v, want %v", err, wantErr)
	}
	if err := u.Update(nil); err != nil {
		t.Errorf("skipped Update() error = %v, want nil", err)
	}
}

func TestUpdater_Reset(t *testing.T) {
	calls := 0
	u := NewUpdater(func(*gocv.Mat) error { calls++; return nil }, 5)

	u.Update(nil) // runs
	u.Update(nil) // skipped
	u.Reset()
	u.Update(nil) // runs again immediately

	if calls != 2 {
		t.Errorf("calls = %d after reset, want 2", calls)
	}
}
