package app

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"time"

	"allrgb/internal/core"
	"allrgb/internal/quality"
	"allrgb/internal/render"
	"allrgb/internal/sims/allrgb"
)

// Result describes a finished run.
type Result struct {
	Path    string
	Image   *image.RGBA
	Stats   allrgb.Stats
	Quality quality.Report
	Elapsed time.Duration
}

// Generate places every color, writes the PNG into cfg.Out and reports
// progress through logger.
func Generate(cfg *Config, logger *log.Logger) (Result, error) {
	mcfg := cfg.Mosaic()
	engine, err := allrgb.New(mcfg)
	if err != nil {
		return Result{}, err
	}

	path := filepath.Join(cfg.Out, mcfg.Filename())
	logger.Printf("Start %s", path)
	logger.Printf("parameters\n%s", engine.Parameters())

	start := time.Now()
	total := mcfg.Colors()
	throttle := core.NewThrottle(cfg.Progress)
	for !engine.Done() {
		if err := engine.Step(); err != nil {
			return Result{}, err
		}
		if cfg.Progress > 0 && throttle.Ready() {
			placed := total - engine.Remaining()
			logger.Printf("placed %d/%d (%.1f%%)", placed, total, 100*float64(placed)/float64(total))
		}
	}
	if err := engine.Verify(); err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	img, err := render.Image(engine.Grid(), mcfg.ColorSize())
	if err != nil {
		return Result{}, err
	}
	if err := render.WritePNG(path, img); err != nil {
		return Result{}, err
	}

	stats := engine.Stats()
	report := quality.Measure(img)
	logger.Printf("done in %s: seeds=%d grown=%d fallbacks=%d walk steps=%d",
		elapsed.Round(time.Millisecond), stats.Seeds, stats.Grown, stats.Fallbacks, stats.WalkSteps)
	logger.Printf("neighbor Lab distance: mean %.3f max %.3f over %d pairs",
		report.MeanLab, report.MaxLab, report.Pairs)

	return Result{Path: path, Image: img, Stats: stats, Quality: report, Elapsed: elapsed}, nil
}

// Title returns the preview window title for a run.
func Title(cfg *Config) string {
	return fmt.Sprintf("allrgb — %s", cfg.Mosaic().Filename())
}
