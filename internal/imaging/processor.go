// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging processes uploaded trek photos into web-sized variants.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder
)

// Variant dimensions. Display images fit within the bounds, thumbnails
// are cropped to exact size.
const (
	displayMaxWidth  = 1600
	displayMaxHeight = 1200
	thumbWidth       = 400
	thumbHeight      = 300
	jpegQuality      = 85
)

// PhotoResult describes a processed upload.
type PhotoResult struct {
	// FilePath and ThumbPath are relative to the uploads directory.
	FilePath  string
	ThumbPath string
	Width     int64
	Height    int64
	TakenAt   time.Time // zero when EXIF has no timestamp
}

// Processor handles photo processing using pure Go libraries.
type Processor struct {
	uploadDir string
}

// NewProcessor creates a photo processor rooted at uploadDir.
func NewProcessor(uploadDir string) *Processor {
	return &Processor{uploadDir: uploadDir}
}

// Process decodes an uploaded photo, honors EXIF orientation, resizes it
// for the web, writes a thumbnail, and returns the stored paths. Output
// is always JPEG, which also strips the original metadata.
func (p *Processor) Process(reader io.Reader) (*PhotoResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	if !supportedFormat(data) {
		return nil, fmt.Errorf("unsupported image format")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = applyOrientation(img, readExifOrientation(bytes.NewReader(data)))
	takenAt := readExifTakenAt(bytes.NewReader(data))

	display := img
	bounds := img.Bounds()
	if bounds.Dx() > displayMaxWidth || bounds.Dy() > displayMaxHeight {
		display = imaging.Fit(img, displayMaxWidth, displayMaxHeight, imaging.Lanczos)
	}
	thumb := imaging.Fill(img, thumbWidth, thumbHeight, imaging.Center, imaging.Lanczos)

	name := uuid.New().String()
	filePath := filepath.Join("treks", name+".jpg")
	thumbPath := filepath.Join("treks", "thumbs", name+".jpg")

	if err := p.saveJPEG(filePath, display); err != nil {
		return nil, err
	}
	if err := p.saveJPEG(thumbPath, thumb); err != nil {
		// Don't leave a display image without its thumbnail.
		_ = os.Remove(filepath.Join(p.uploadDir, filePath))
		return nil, err
	}

	finalBounds := display.Bounds()
	return &PhotoResult{
		FilePath:  filePath,
		ThumbPath: thumbPath,
		Width:     int64(finalBounds.Dx()),
		Height:    int64(finalBounds.Dy()),
		TakenAt:   takenAt,
	}, nil
}

// Delete removes the stored files for a photo.
func (p *Processor) Delete(filePath, thumbPath string) error {
	for _, rel := range []string{filePath, thumbPath} {
		if rel == "" {
			continue
		}
		clean := filepath.Clean(rel)
		if strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			return fmt.Errorf("invalid photo path: %s", rel)
		}
		if err := os.Remove(filepath.Join(p.uploadDir, clean)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", clean, err)
		}
	}
	return nil
}

func (p *Processor) saveJPEG(relPath string, img image.Image) error {
	target := filepath.Join(p.uploadDir, relPath)

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encoding jpeg: %w", err)
	}

	if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	return nil
}

// supportedFormat checks the content sniff for a format we can decode.
// TIFF is rejected explicitly (CVE-2023-36308 in disintegration/imaging).
func supportedFormat(data []byte) bool {
	contentType := http.DetectContentType(data)
	if strings.Contains(contentType, "tiff") {
		return false
	}
	for _, f := range []string{"jpeg", "png", "gif", "webp"} {
		if strings.Contains(contentType, f) {
			return true
		}
	}
	return false
}

// readExifOrientation reads the EXIF orientation tag from image data.
// Returns 1 (normal) if orientation cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}

	return orientation
}

// readExifTakenAt reads the original capture time, zero when absent.
func readExifTakenAt(r io.Reader) time.Time {
	x, err := exif.Decode(r)
	if err != nil {
		return time.Time{}
	}

	t, err := x.DateTime()
	if err != nil {
		return time.Time{}
	}
	return t
}

// applyOrientation applies EXIF orientation transformation to an image.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
