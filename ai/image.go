package ai

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/webp"
)

const (
	MaxImageDimension = 1024
	JPEGQuality       = 85

	// Limits on the declared source canvas, checked before any pixel buffer
	// is allocated.
	MaxSourcePixels = 50_000_000
	MaxSourceSide   = 16384
)

var ErrUnsupportedImage = errors.New("unsupported or corrupt image")

// PrepareImage decodes a JPEG, PNG or WebP image, shrinks it to fit within
// MaxImageDimension on both sides and re-encodes it as JPEG.
func PrepareImage(data []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 ||
		cfg.Width > MaxSourceSide || cfg.Height > MaxSourceSide ||
		int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return nil, fmt.Errorf("%w: canvas %dx%d too large", ErrUnsupportedImage, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	b := src.Bounds()
	if b.Dx() > MaxImageDimension || b.Dy() > MaxImageDimension {
		g := gift.New(gift.ResizeToFit(MaxImageDimension, MaxImageDimension, gift.LanczosResampling))
		dst := image.NewNRGBA(g.Bounds(b))
		g.Draw(dst, src)
		src = dst
	}

	// JPEG has no alpha channel; flatten onto white.
	flat := image.NewRGBA(src.Bounds())
	draw.Draw(flat, flat.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), src, src.Bounds().Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
