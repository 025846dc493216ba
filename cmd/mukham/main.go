package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ayusman/mukham/internal/app"
	"github.com/ayusman/mukham/internal/config"
	"github.com/ayusman/mukham/internal/overlay"
)

// Version is the application version.
const Version = "0.1.0"

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "mukham",
	Short:   "Face mesh landmark overlay for live video",
	Version: Version,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Default()

		if cfgPath != "" {
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		// Explicit flags win over the config file.
		applyFlagOverrides(cmd)

		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("camera") {
		cfg.CameraID, _ = flags.GetInt("camera")
	}
	if flags.Changed("fps") {
		cfg.FPS, _ = flags.GetInt("fps")
	}
	if flags.Changed("max-faces") {
		cfg.MaxFaces, _ = flags.GetInt("max-faces")
	}
	if flags.Changed("detect-rate") {
		cfg.FaceDetectRate, _ = flags.GetInt("detect-rate")
	}
	if flags.Changed("refine-landmarks") {
		cfg.RefineLandmarks, _ = flags.GetBool("refine-landmarks")
	}
	if flags.Changed("static-mode") {
		cfg.StaticMode, _ = flags.GetBool("static-mode")
	}
	if flags.Changed("detection-con") {
		cfg.DetectionCon, _ = flags.GetFloat64("detection-con")
	}
	if flags.Changed("tracking-con") {
		cfg.TrackingCon, _ = flags.GetFloat64("tracking-con")
	}
	if flags.Changed("motion-threshold") {
		cfg.MotionThreshold, _ = flags.GetFloat64("motion-threshold")
	}
	if flags.Changed("display") {
		cfg.Display, _ = flags.GetBool("display")
	}
	if flags.Changed("snapshot-dir") {
		cfg.SnapshotDir, _ = flags.GetString("snapshot-dir")
	}
}

func run() error {
	fmt.Println("Mukham - Face Mesh Overlay")

	overlayCfg := overlay.DefaultConfig()
	overlayCfg.Detector.StaticMode = cfg.StaticMode
	overlayCfg.Detector.MaxFaces = cfg.MaxFaces
	overlayCfg.Detector.RefineLandmarks = cfg.RefineLandmarks
	overlayCfg.Detector.DetectionCon = cfg.DetectionCon
	overlayCfg.Detector.TrackingCon = cfg.TrackingCon
	overlayCfg.DetectRate = cfg.FaceDetectRate

	a := app.New(app.Config{
		CameraID:        cfg.CameraID,
		Width:           cfg.Width,
		Height:          cfg.Height,
		FPS:             cfg.FPS,
		Overlay:         overlayCfg,
		MotionThreshold: cfg.MotionThreshold,
		Display:         cfg.Display,
		SnapshotDir:     cfg.SnapshotDir,
	})

	if err := a.Start(); err != nil {
		return fmt.Errorf("start pipeline: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received %v, shutting down", sig)

	a.Stop()
	return nil
}

func main() {
	flags := rootCmd.Flags()
	flags.StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")
	flags.Int("camera", 0, "camera device ID")
	flags.Int("fps", 30, "frame loop rate")
	flags.Int("max-faces", 1, "maximum number of faces to track")
	flags.Int("detect-rate", 10, "frames between detection runs")
	flags.Bool("refine-landmarks", false, "enable the refined iris model")
	flags.Bool("static-mode", false, "treat every frame as an independent image")
	flags.Float64("detection-con", 0.5, "minimum detection confidence")
	flags.Float64("tracking-con", 0.5, "minimum tracking confidence")
	flags.Float64("motion-threshold", 0, "scene-change gate threshold in percent (0 disables)")
	flags.Bool("display", true, "show a preview window")
	flags.String("snapshot-dir", "", "directory for on-demand snapshots")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
