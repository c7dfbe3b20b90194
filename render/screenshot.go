package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotName returns the file name used for a capture taken at t
func ScreenshotName(t time.Time) string {
	return fmt.Sprintf("pong-%s.png", t.Format("20060102-150405"))
}

// WriteScreenshot encodes img as PNG under dir and returns the written path
func WriteScreenshot(dir string, img image.Image, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	path := filepath.Join(dir, ScreenshotName(t))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close screenshot: %w", err)
	}
	return path, nil
}
