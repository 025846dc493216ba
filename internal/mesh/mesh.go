// Package mesh holds the vendor face mesh topology: which landmark indices are
// joined by a line when a facial region is drawn.
package mesh

// NumLandmarks is the fixed number of landmarks per face, including the ten
// iris points that are only populated when landmark refinement is enabled.
const NumLandmarks = 478

// Topology holds per-instance, read-only copies of the vendor connection
// groups. Contours is the union of the outline groups (lips, eyes, eyebrows,
// face oval) and is the set iterated during drawing.
type Topology struct {
	Lips         []Connection
	LeftEye      []Connection
	LeftIris     []Connection
	LeftEyebrow  []Connection
	RightEye     []Connection
	RightEyebrow []Connection
	RightIris    []Connection
	FaceOval     []Connection
	Nose         []Connection
	Contours     []Connection
}

// NewTopology builds a Topology from the vendor tables. The returned slices
// are fresh copies; the topology is never mutated after construction.
func NewTopology() *Topology {
	t := &Topology{
		Lips:         copyConnections(lips),
		LeftEye:      copyConnections(leftEye),
		LeftIris:     copyConnections(leftIris),
		LeftEyebrow:  copyConnections(leftEyebrow),
		RightEye:     copyConnections(rightEye),
		RightEyebrow: copyConnections(rightEyebrow),
		RightIris:    copyConnections(rightIris),
		FaceOval:     copyConnections(faceOval),
		Nose:         copyConnections(nose),
	}

	contours := make([]Connection, 0,
		len(t.Lips)+len(t.LeftEye)+len(t.LeftEyebrow)+len(t.RightEye)+len(t.RightEyebrow)+len(t.FaceOval))
	contours = append(contours, t.Lips...)
	contours = append(contours, t.LeftEye...)
	contours = append(contours, t.LeftEyebrow...)
	contours = append(contours, t.RightEye...)
	contours = append(contours, t.RightEyebrow...)
	contours = append(contours, t.FaceOval...)
	t.Contours = contours

	return t
}

func copyConnections(src []Connection) []Connection {
	dst := make([]Connection, len(src))
	copy(dst, src)
	return dst
}
