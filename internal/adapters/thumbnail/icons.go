package thumbnail

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/library"
)

const iconSize = 64

// Kind icons are flat tiles rendered once into the shared icons directory.
// Every asset of the same kind resolves to the same path, so callers never
// special-case the no-preview case and nothing per-asset is written.
var iconColors = map[domain.Kind]color.RGBA{
	domain.KindDirectory: {R: 0xE0, G: 0xA4, B: 0x3B, A: 0xFF}, // amber folder
	domain.KindFile:      {R: 0x7A, G: 0x82, B: 0x99, A: 0xFF}, // slate file
}

// iconPath materializes the shared icon for a kind if needed and returns
// its library-relative path.
func (p *Pipeline) iconPath(kind domain.Kind) (string, error) {
	dir := filepath.Join(p.lib.ThumbnailsDir(), "icons")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := kind.String() + ".png"
	abs := filepath.Join(dir, name)
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		if err := renderIcon(abs, iconColors[kind]); err != nil {
			return "", err
		}
	}

	return library.StoreDirName + "/thumbnails/icons/" + name, nil
}

// renderIcon draws a rounded-feel tile: a solid fill with a darker border
// and a lighter inner band, enough to read as a placeholder at list sizes.
func renderIcon(path string, fill color.RGBA) error {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))

	border := color.RGBA{
		R: fill.R / 2,
		G: fill.G / 2,
		B: fill.B / 2,
		A: 0xFF,
	}
	band := color.RGBA{
		R: lighten(fill.R),
		G: lighten(fill.G),
		B: lighten(fill.B),
		A: 0xFF,
	}

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			switch {
			case x < 2 || y < 2 || x >= iconSize-2 || y >= iconSize-2:
				img.SetRGBA(x, y, border)
			case y >= 12 && y < 20:
				img.SetRGBA(x, y, band)
			default:
				img.SetRGBA(x, y, fill)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func lighten(c uint8) uint8 {
	v := int(c) + 60
	if v > 0xFF {
		v = 0xFF
	}
	return uint8(v)
}
