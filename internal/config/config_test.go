package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.MaxFaces != 1 {
		t.Errorf("MaxFaces = %d, want 1", cfg.MaxFaces)
	}
	if cfg.DetectionCon != 0.5 || cfg.TrackingCon != 0.5 {
		t.Errorf("confidences = (%f, %f), want (0.5, 0.5)", cfg.DetectionCon, cfg.TrackingCon)
	}
	if cfg.FaceDetectRate != 10 {
		t.Errorf("FaceDetectRate = %d, want 10", cfg.FaceDetectRate)
	}
	if cfg.StaticMode || cfg.RefineLandmarks {
		t.Error("StaticMode and RefineLandmarks should default to false")
	}
	if cfg.MotionThreshold != 0 {
		t.Errorf("MotionThreshold = %f, want 0 (gate disabled)", cfg.MotionThreshold)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults, rest keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mukham.yaml")
		content := "max_faces: 4\nrefine_landmarks: true\nface_detect_rate: 3\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.MaxFaces != 4 {
			t.Errorf("MaxFaces = %d, want 4", cfg.MaxFaces)
		}
		if !cfg.RefineLandmarks {
			t.Error("RefineLandmarks should be true")
		}
		if cfg.FaceDetectRate != 3 {
			t.Errorf("FaceDetectRate = %d, want 3", cfg.FaceDetectRate)
		}
		if cfg.DetectionCon != 0.5 {
			t.Errorf("DetectionCon = %f, want default 0.5", cfg.DetectionCon)
		}
	})

	t.Run("missing file returns an error and defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err == nil {
			t.Error("expected error for missing file")
		}
		if cfg.MaxFaces != 1 {
			t.Errorf("MaxFaces = %d, want default 1", cfg.MaxFaces)
		}
	})

	t.Run("malformed yaml returns an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("max_faces: [not an int"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero max faces", func(c *Config) { c.MaxFaces = 0 }, true},
		{"detection confidence above one", func(c *Config) { c.DetectionCon = 1.5 }, true},
		{"negative tracking confidence", func(c *Config) { c.TrackingCon = -0.1 }, true},
		{"zero detect rate", func(c *Config) { c.FaceDetectRate = 0 }, true},
		{"zero fps", func(c *Config) { c.FPS = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
