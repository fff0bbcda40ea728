// Package thumbnail derives cached preview images for library content.
// Generation is best-effort by contract: a failed decode costs the asset
// its preview, never its import.
package thumbnail

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/library"
)

// jpegQuality is fixed so regenerating an unchanged source reproduces the
// cache file byte for byte.
const jpegQuality = 85

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".bmp": true, ".tif": true, ".tiff": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".mkv": true, ".avi": true, ".webm": true,
}

// Pipeline implements the Thumbnailer port: images are decoded, fitted into
// the configured bounds, and re-encoded as JPEG under the thumbnail cache;
// videos contribute their first frame via ffmpeg; everything else falls back
// to a shared per-kind icon.
type Pipeline struct {
	lib     *library.Library
	width   int
	height  int
	grabber *frameGrabber
}

func NewPipeline(lib *library.Library, width, height int) *Pipeline {
	return &Pipeline{
		lib:     lib,
		width:   width,
		height:  height,
		grabber: newFrameGrabber(),
	}
}

// Generate produces the preview for an asset and returns its path relative
// to the library root. The cache path is a function of the asset id only,
// so calling Generate again overwrites the previous preview in place.
func (p *Pipeline) Generate(ctx context.Context, sourcePath string, kind domain.Kind, assetID string) (string, error) {
	if kind == domain.KindDirectory {
		return p.iconPath(domain.KindDirectory)
	}

	ext := strings.ToLower(filepath.Ext(sourcePath))
	switch {
	case imageExtensions[ext]:
		return p.renderImage(sourcePath, assetID)

	case videoExtensions[ext]:
		if !p.grabber.IsAvailable() {
			return p.iconPath(domain.KindFile)
		}
		frame, cleanup, err := p.grabber.FirstFrame(ctx, sourcePath)
		if err != nil {
			return "", fmt.Errorf("extracting video frame: %w", err)
		}
		defer cleanup()
		return p.renderImage(frame, assetID)

	default:
		return p.iconPath(domain.KindFile)
	}
}

// Remove deletes the per-asset cache file. Shared icons are left alone.
func (p *Pipeline) Remove(assetID string) error {
	err := os.Remove(p.cacheFile(assetID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// renderImage decodes, aspect-fits, and re-encodes the source into the
// asset's cache slot.
func (p *Pipeline) renderImage(sourcePath, assetID string) (string, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", sourcePath, err)
	}

	scaled := fit(src, p.width, p.height)

	if err := os.MkdirAll(p.lib.ThumbnailsDir(), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(p.cacheFile(assetID))
	if err != nil {
		return "", err
	}
	if err := jpeg.Encode(out, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		out.Close()
		os.Remove(p.cacheFile(assetID))
		return "", fmt.Errorf("encoding thumbnail: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	return p.relCacheFile(assetID), nil
}

// fit scales the image to sit inside maxW x maxH while preserving aspect
// ratio. Images already inside the bounds are not upscaled.
func fit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func (p *Pipeline) cacheFile(assetID string) string {
	return filepath.Join(p.lib.ThumbnailsDir(), assetID+".jpg")
}

func (p *Pipeline) relCacheFile(assetID string) string {
	return library.StoreDirName + "/thumbnails/" + assetID + ".jpg"
}
