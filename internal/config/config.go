// Package config loads toolkit configuration from a YAML file over defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full runtime configuration for the toolkit binary.
type Config struct {
	// Camera settings.
	CameraID int `yaml:"camera_id"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	FPS      int `yaml:"fps"`

	// Detector settings.
	StaticMode      bool    `yaml:"static_mode"`
	MaxFaces        int     `yaml:"max_faces"`
	RefineLandmarks bool    `yaml:"refine_landmarks"`
	DetectionCon    float64 `yaml:"detection_con"`
	TrackingCon     float64 `yaml:"tracking_con"`

	// FaceDetectRate is the number of frames between detection runs.
	FaceDetectRate int `yaml:"face_detect_rate"`

	// MotionThreshold enables the scene-change gate when positive: frames
	// whose changed-pixel percentage stays below it skip detection.
	// Zero disables the gate.
	MotionThreshold float64 `yaml:"motion_threshold"`

	// Display opens a preview window showing the annotated frames.
	Display bool `yaml:"display"`

	// SnapshotDir is where annotated frames are saved on demand.
	SnapshotDir string `yaml:"snapshot_dir"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		CameraID:        0,
		Width:           640,
		Height:          480,
		FPS:             30,
		StaticMode:      false,
		MaxFaces:        1,
		RefineLandmarks: false,
		DetectionCon:    0.5,
		TrackingCon:     0.5,
		FaceDetectRate:  10,
		MotionThreshold: 0,
		Display:         true,
		SnapshotDir:     "",
	}
}

// Load reads a YAML config file and applies it over the defaults. Keys absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.MaxFaces < 1 {
		return fmt.Errorf("max_faces must be at least 1, got %d", c.MaxFaces)
	}
	if c.DetectionCon < 0 || c.DetectionCon > 1 {
		return fmt.Errorf("detection_con must be in [0,1], got %f", c.DetectionCon)
	}
	if c.TrackingCon < 0 || c.TrackingCon > 1 {
		return fmt.Errorf("tracking_con must be in [0,1], got %f", c.TrackingCon)
	}
	if c.FaceDetectRate < 1 {
		return fmt.Errorf("face_detect_rate must be at least 1, got %d", c.FaceDetectRate)
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", c.FPS)
	}
	return nil
}
