// Package desktop implements the capture-side collaborators: a screen
// provider, a pointer provider and key trigger sources. The screen
// provider here is synthetic; a real grabber plugs in behind the same
// capture.ScreenProvider interface.
package desktop

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SyntheticScreen writes placeholder PNG frames. Each capture gets a
// fresh UUID filename, so re-capturing the same target always yields a
// distinct image path.
type SyntheticScreen struct {
	Width  int
	Height int
	Logger *slog.Logger
}

// TakeScreen renders one frame into targetDir and returns its filename
// relative to targetDir.
func (s *SyntheticScreen) TakeScreen(ctx context.Context, targetDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	w, h := s.Width, s.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 400
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 0x80,
				A: 0xff,
			})
		}
	}

	name := uuid.NewString() + ".png"
	path := filepath.Join(targetDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create capture file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to encode capture: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Debug("screen captured", "path", path)
	}
	return name, nil
}
