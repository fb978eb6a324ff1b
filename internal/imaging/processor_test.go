// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a simple test image with the given dimensions.
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func encodeTestJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	data := encodeTestJPEG(t, createTestImage(800, 600))

	res, err := p.Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	// 800x600 fits within the display bounds, no resize.
	if res.Width != 800 || res.Height != 600 {
		t.Errorf("dimensions = %dx%d, want 800x600", res.Width, res.Height)
	}
	if !res.TakenAt.IsZero() {
		t.Errorf("TakenAt = %v, want zero without EXIF", res.TakenAt)
	}

	for _, rel := range []string{res.FilePath, res.ThumbPath} {
		if filepath.IsAbs(rel) {
			t.Errorf("path %q should be relative", rel)
		}
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("stored file missing: %v", err)
		}
	}

	// Thumbnail is cropped to exact size.
	f, err := os.Open(filepath.Join(dir, res.ThumbPath))
	if err != nil {
		t.Fatalf("opening thumb: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding thumb config: %v", err)
	}
	if cfg.Width != thumbWidth || cfg.Height != thumbHeight {
		t.Errorf("thumb = %dx%d, want %dx%d", cfg.Width, cfg.Height, thumbWidth, thumbHeight)
	}
}

func TestProcessResizesLargeImages(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	data := encodeTestJPEG(t, createTestImage(3200, 2400))

	res, err := p.Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if res.Width > displayMaxWidth || res.Height > displayMaxHeight {
		t.Errorf("dimensions = %dx%d, want within %dx%d",
			res.Width, res.Height, displayMaxWidth, displayMaxHeight)
	}
}

func TestProcessRejectsNonImage(t *testing.T) {
	p := NewProcessor(t.TempDir())

	if _, err := p.Process(bytes.NewReader([]byte("definitely not an image"))); err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	res, err := p.Process(bytes.NewReader(encodeTestJPEG(t, createTestImage(100, 100))))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if err := p.Delete(res.FilePath, res.ThumbPath); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, res.FilePath)); !os.IsNotExist(err) {
		t.Error("display file should be removed")
	}

	// Deleting again is a no-op.
	if err := p.Delete(res.FilePath, res.ThumbPath); err != nil {
		t.Errorf("Delete repeat: %v", err)
	}

	// Path traversal is rejected.
	if err := p.Delete("../etc/passwd", ""); err == nil {
		t.Error("expected error for traversal path")
	}
}
