package thumbnail

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/library"
)

func newTestPipeline(t *testing.T) (*Pipeline, *library.Library) {
	t.Helper()
	lib := library.New(t.TempDir())
	if err := lib.Initialize(); err != nil {
		t.Fatalf("initialize library: %v", err)
	}
	return NewPipeline(lib, 128, 128), lib
}

// writeTestPNG writes a w x h gradient image so scaling has real content.
func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestPipeline_GenerateImage(t *testing.T) {
	p, lib := newTestPipeline(t)
	src := filepath.Join(t.TempDir(), "big.png")
	writeTestPNG(t, src, 640, 480)

	id := domain.NewID()
	rel, err := p.Generate(context.Background(), src, domain.KindFile, id)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if rel != ".asset_db/thumbnails/"+id+".jpg" {
		t.Errorf("unexpected cache path: %s", rel)
	}

	f, err := os.Open(lib.Abs(rel))
	if err != nil {
		t.Fatalf("open thumbnail: %v", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg output, got %s", format)
	}
	b := img.Bounds()
	if b.Dx() > 128 || b.Dy() > 128 {
		t.Errorf("thumbnail exceeds bounds: %dx%d", b.Dx(), b.Dy())
	}
	// 640x480 fitted into 128x128 keeps the 4:3 ratio.
	if b.Dx() != 128 || b.Dy() != 96 {
		t.Errorf("aspect ratio not preserved: %dx%d", b.Dx(), b.Dy())
	}
}

func TestPipeline_GenerateIsIdempotent(t *testing.T) {
	p, lib := newTestPipeline(t)
	src := filepath.Join(t.TempDir(), "img.png")
	writeTestPNG(t, src, 300, 300)

	id := domain.NewID()
	rel1, err := p.Generate(context.Background(), src, domain.KindFile, id)
	if err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(lib.Abs(rel1))
	if err != nil {
		t.Fatal(err)
	}

	rel2, err := p.Generate(context.Background(), src, domain.KindFile, id)
	if err != nil {
		t.Fatal(err)
	}
	if rel1 != rel2 {
		t.Errorf("cache path changed across runs: %s vs %s", rel1, rel2)
	}
	second, err := os.ReadFile(lib.Abs(rel2))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("regeneration is not byte-for-byte identical")
	}
}

func TestPipeline_SmallImageNotUpscaled(t *testing.T) {
	p, lib := newTestPipeline(t)
	src := filepath.Join(t.TempDir(), "small.png")
	writeTestPNG(t, src, 32, 16)

	rel, err := p.Generate(context.Background(), src, domain.KindFile, domain.NewID())
	if err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(lib.Abs(rel))
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("small image was rescaled to %v", img.Bounds())
	}
}

func TestPipeline_DirectoryIcon(t *testing.T) {
	p, lib := newTestPipeline(t)

	rel, err := p.Generate(context.Background(), "/whatever", domain.KindDirectory, domain.NewID())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasSuffix(rel, "icons/directory.png") {
		t.Errorf("unexpected icon path: %s", rel)
	}
	if _, err := os.Stat(lib.Abs(rel)); err != nil {
		t.Errorf("icon not materialized: %v", err)
	}

	// Two directories share the same icon path.
	rel2, err := p.Generate(context.Background(), "/elsewhere", domain.KindDirectory, domain.NewID())
	if err != nil {
		t.Fatal(err)
	}
	if rel != rel2 {
		t.Error("directory icon path is not deterministic")
	}
}

func TestPipeline_UnsupportedTypeIcon(t *testing.T) {
	p, _ := newTestPipeline(t)

	rel, err := p.Generate(context.Background(), "/src/archive.zip", domain.KindFile, domain.NewID())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasSuffix(rel, "icons/file.png") {
		t.Errorf("expected file icon, got %s", rel)
	}
}

func TestPipeline_DecodeFailure(t *testing.T) {
	p, _ := newTestPipeline(t)
	src := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(src, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Generate(context.Background(), src, domain.KindFile, domain.NewID()); err == nil {
		t.Error("expected error for undecodable image")
	}
}

func TestPipeline_Remove(t *testing.T) {
	p, lib := newTestPipeline(t)
	src := filepath.Join(t.TempDir(), "img.png")
	writeTestPNG(t, src, 200, 200)

	id := domain.NewID()
	rel, err := p.Generate(context.Background(), src, domain.KindFile, id)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Remove(id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(lib.Abs(rel)); !os.IsNotExist(err) {
		t.Error("thumbnail not removed")
	}

	// Removing an asset without a cached thumbnail is not an error.
	if err := p.Remove(domain.NewID()); err != nil {
		t.Errorf("remove of missing thumbnail: %v", err)
	}
}
