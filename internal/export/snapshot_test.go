package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gocv.io/x/gocv"
)

func TestNewSnapshotter(t *testing.T) {
	t.Run("creates the directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "shots")

		s, err := NewSnapshotter(dir)
		if err != nil {
			t.Fatalf("NewSnapshotter() error = %v", err)
		}

		if info, err := os.Stat(s.Dir()); err != nil || !info.IsDir() {
			t.Errorf("snapshot directory not created: %v", err)
		}
	})

	t.Run("rejects an empty directory", func(t *testing.T) {
		if _, err := NewSnapshotter(""); err == nil {
			t.Error("expected error for empty directory")
		}
	})
}

func TestSnapshotter_Save(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping gocv test")
	}

	s, err := NewSnapshotter(t.TempDir())
	if err != nil {
		t.Fatalf("NewSnapshotter() error = %v", err)
	}

	t.Run("writes a png file", func(t *testing.T) {
		frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
		defer frame.Close()

		path, err := s.Save(&frame)
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		if !strings.HasSuffix(path, ".png") {
			t.Errorf("path = %s, want .png suffix", path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("snapshot file missing: %v", err)
		}
	})

	t.Run("distinct saves get distinct names", func(t *testing.T) {
		frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
		defer frame.Close()

		a, err := s.Save(&frame)
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		b, err := s.Save(&frame)
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		if a == b {
			t.Error("two saves produced the same path")
		}
	})

	t.Run("rejects nil and empty frames", func(t *testing.T) {
		if _, err := s.Save(nil); err == nil {
			t.Error("expected error for nil frame")
		}

		empty := gocv.NewMat()
		defer empty.Close()
		if _, err := s.Save(&empty); err == nil {
			t.Error("expected error for empty frame")
		}
	})
}
