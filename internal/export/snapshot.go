// Package export writes annotated frames to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gocv.io/x/gocv"
)

// Snapshotter saves frames as uuid-named PNG files in a single directory.
type Snapshotter struct {
	dir string
}

// NewSnapshotter creates the snapshot directory if needed and returns a
// Snapshotter writing into it.
func NewSnapshotter(dir string) (*Snapshotter, error) {
	if dir == "" {
		return nil, fmt.Errorf("snapshot directory not set")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &Snapshotter{dir: dir}, nil
}

// Dir returns the snapshot directory.
func (s *Snapshotter) Dir() string {
	return s.dir
}

// Save writes the frame as a PNG and returns the path it was written to.
func (s *Snapshotter) Save(frame *gocv.Mat) (string, error) {
	if frame == nil || frame.Empty() {
		return "", fmt.Errorf("nothing to save: empty frame")
	}

	path := filepath.Join(s.dir, uuid.New().String()+".png")
	if ok := gocv.IMWrite(path, *frame); !ok {
		return "", fmt.Errorf("write snapshot %s", path)
	}

	return path, nil
}
