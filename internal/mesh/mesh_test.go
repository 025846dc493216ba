package mesh

import "testing"

func TestNewTopology_GroupSizes(t *testing.T) {
	topo := NewTopology()

	tests := []struct {
		name  string
		conns []Connection
		want  int
	}{
		{"lips", topo.Lips, 40},
		{"left eye", topo.LeftEye, 16},
		{"left iris", topo.LeftIris, 4},
		{"left eyebrow", topo.LeftEyebrow, 8},
		{"right eye", topo.RightEye, 16},
		{"right eyebrow", topo.RightEyebrow, 8},
		{"right iris", topo.RightIris, 4},
		{"face oval", topo.FaceOval, 36},
		{"nose", topo.Nose, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.conns) != tt.want {
				t.Errorf("len = %d, want %d", len(tt.conns), tt.want)
			}
		})
	}
}

func TestNewTopology_Contours(t *testing.T) {
	topo := NewTopology()

	t.Run("is the union of the outline groups", func(t *testing.T) {
		want := len(topo.Lips) + len(topo.LeftEye) + len(topo.LeftEyebrow) +
			len(topo.RightEye) + len(topo.RightEyebrow) + len(topo.FaceOval)
		if len(topo.Contours) != want {
			t.Errorf("len(Contours) = %d, want %d", len(topo.Contours), want)
		}
	})

	t.Run("excludes the irises and nose", func(t *testing.T) {
		for _, c := range topo.Contours {
			if c.A >= 468 || c.B >= 468 {
				t.Errorf("contour %v references an iris landmark", c)
			}
		}
	})
}

func TestNewTopology_IndicesInRange(t *testing.T) {
	topo := NewTopology()

	groups := map[string][]Connection{
		"lips":          topo.Lips,
		"left eye":      topo.LeftEye,
		"left iris":     topo.LeftIris,
		"left eyebrow":  topo.LeftEyebrow,
		"right eye":     topo.RightEye,
		"right eyebrow": topo.RightEyebrow,
		"right iris":    topo.RightIris,
		"face oval":     topo.FaceOval,
		"nose":          topo.Nose,
		"contours":      topo.Contours,
	}

	for name, conns := range groups {
		for _, c := range conns {
			if c.A < 0 || c.A >= NumLandmarks || c.B < 0 || c.B >= NumLandmarks {
				t.Errorf("%s: connection %v out of range [0,%d)", name, c, NumLandmarks)
			}
			if c.A == c.B {
				t.Errorf("%s: degenerate connection %v", name, c)
			}
		}
	}
}

func TestNewTopology_IrisIndices(t *testing.T) {
	topo := NewTopology()

	// Iris landmarks only exist in the refined model and occupy indices 468..477.
	for _, c := range append(append([]Connection{}, topo.LeftIris...), topo.RightIris...) {
		if c.A < 468 || c.B < 468 {
			t.Errorf("iris connection %v references a non-iris landmark", c)
		}
	}
}

func TestNewTopology_InstancesAreIndependent(t *testing.T) {
	a := NewTopology()
	b := NewTopology()

	a.Lips[0] = Connection{-1, -1}

	if b.Lips[0] == a.Lips[0] {
		t.Error("mutating one topology instance leaked into another")
	}

	if c := NewTopology(); c.Lips[0].A == -1 {
		t.Error("mutating a topology instance corrupted the vendor table")
	}
}
