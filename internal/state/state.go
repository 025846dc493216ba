// Package state provides the shared simulation-state store that the face mesh
// adapter writes into and the renderer reads from.
package state

import (
	"fmt"
	"sync"
)

// NoneDetected is the detected-count sentinel meaning "no face found in the
// last detection pass".
const NoneDetected = -1

// Vec3 is a normalized 3D coordinate.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// Vec2 is a pixel-space 2D coordinate.
type Vec2 struct {
	X float32
	Y float32
}

// FaceMesh stores per-face, per-landmark coordinates in two parallel
// fixed-shape arrays of (maxFaces x numLandmarks). There is exactly one writer
// (the detection step) and one reader (the draw step) per frame; the lock only
// guards against the driver loop and outside observers racing on snapshots.
type FaceMesh struct {
	maxFaces     int
	numLandmarks int

	mu       sync.RWMutex
	norm     [][]Vec3
	px       [][]Vec2
	detected int
}

// NewFaceMesh allocates a zeroed store shaped (maxFaces x numLandmarks) with
// the detected-count set to the "none" sentinel.
func NewFaceMesh(maxFaces, numLandmarks int) *FaceMesh {
	if maxFaces < 1 {
		maxFaces = 1
	}

	norm := make([][]Vec3, maxFaces)
	px := make([][]Vec2, maxFaces)
	for i := range norm {
		norm[i] = make([]Vec3, numLandmarks)
		px[i] = make([]Vec2, numLandmarks)
	}

	return &FaceMesh{
		maxFaces:     maxFaces,
		numLandmarks: numLandmarks,
		norm:         norm,
		px:           px,
		detected:     NoneDetected,
	}
}

// MaxFaces returns the configured face capacity.
func (s *FaceMesh) MaxFaces() int {
	return s.maxFaces
}

// NumLandmarks returns the per-face landmark count.
func (s *FaceMesh) NumLandmarks() int {
	return s.numLandmarks
}

// Detected returns the detected-count flag: NoneDetected when the last pass
// found no faces, otherwise the number of tracked faces.
func (s *FaceMesh) Detected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detected
}

// SetDetected records how many faces the last detection pass found.
func (s *FaceMesh) SetDetected(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detected = n
}

// Fill sets every coordinate component in both arrays to v.
func (s *FaceMesh) Fill(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < s.maxFaces; i++ {
		for j := 0; j < s.numLandmarks; j++ {
			s.norm[i][j] = Vec3{X: v, Y: v, Z: v}
			s.px[i][j] = Vec2{X: v, Y: v}
		}
	}
}

// Set bulk-assigns both coordinate arrays. The inputs must match the store
// shape exactly; a mismatch is a programming error and is rejected rather than
// silently truncated.
func (s *FaceMesh) Set(norm [][]Vec3, px [][]Vec2) error {
	if len(norm) != s.maxFaces || len(px) != s.maxFaces {
		return fmt.Errorf("state: face count mismatch: got (%d, %d), want %d", len(norm), len(px), s.maxFaces)
	}
	for i := range norm {
		if len(norm[i]) != s.numLandmarks || len(px[i]) != s.numLandmarks {
			return fmt.Errorf("state: landmark count mismatch on face %d", i)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range norm {
		copy(s.norm[i], norm[i])
		copy(s.px[i], px[i])
	}

	return nil
}

// Norm returns the normalized coordinate for one landmark of one face.
func (s *FaceMesh) Norm(face, landmark int) Vec3 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.norm[face][landmark]
}

// Px returns the pixel-space coordinate for one landmark of one face.
func (s *FaceMesh) Px(face, landmark int) Vec2 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.px[face][landmark]
}

// SnapshotPx copies one face's pixel coordinates into a fresh slice.
func (s *FaceMesh) SnapshotPx(face int) []Vec2 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Vec2, s.numLandmarks)
	copy(out, s.px[face])
	return out
}
