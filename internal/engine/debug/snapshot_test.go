package debug

import (
	"image/png"
	"os"
	"testing"

	"github.com/g0blinResearch/asciirender/internal/engine/render"
)

func TestCaptureFrameWritesGlyphGrid(t *testing.T) {
	f := render.NewFrame(4, 2)
	f.Cells[0] = render.Cell{Ch: '@'}
	f.Cells[5] = render.Cell{Ch: '#', R: 255, G: 255, B: 0, Colored: true}

	c := NewCapture(t.TempDir(), "frame")
	name, err := c.CaptureFrame(f)
	if err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}

	b := img.Bounds()
	if b.Dx() != 4*cellW || b.Dy() != 2*cellH {
		t.Fatalf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), 4*cellW, 2*cellH)
	}

	// The colored cell must appear somewhere in its glyph box with
	// the exact cell color.
	found := false
	for y := cellH; y < 2*cellH && !found; y++ {
		for x := cellW; x < 2*cellW; x++ {
			r, g, bch, _ := img.At(x, y).RGBA()
			if r>>8 == 255 && g>>8 == 255 && bch>>8 == 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("colored glyph pixels not found in the snapshot")
	}
}

func TestCaptureFromPixelsRejectsShortBuffer(t *testing.T) {
	c := NewCapture(t.TempDir(), "gl")
	if _, err := c.CaptureFromPixels(make([]byte, 10), 4, 4); err == nil {
		t.Error("short pixel buffer accepted")
	}
}

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255, // GL row 0 = bottom
		0, 0, 255, 255, // GL row 1 = top
	}
	c := NewCapture(t.TempDir(), "gl")
	name, err := c.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}

	r, _, _, _ := img.At(0, 0).RGBA()
	if r>>8 != 0 {
		t.Errorf("top-left red = %d, want 0 (blue row on top)", r>>8)
	}
	r, _, _, _ = img.At(0, 1).RGBA()
	if r>>8 != 255 {
		t.Errorf("bottom-left red = %d, want 255 (red row at bottom)", r>>8)
	}
}
