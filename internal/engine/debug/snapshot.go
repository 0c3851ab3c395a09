// Package debug provides snapshot capture for both render paths.
package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/g0blinResearch/asciirender/internal/engine/render"
)

// Face7x13 cell metrics.
const (
	cellW   = 7
	cellH   = 13
	cellTop = 11 // baseline offset
)

var (
	snapshotBg   = color.RGBA{R: 10, G: 13, B: 18, A: 255}
	snapshotFill = color.RGBA{R: 200, G: 200, B: 205, A: 255}
)

// Capture writes timestamped PNG snapshots into an output directory.
type Capture struct {
	outputDir string
	prefix    string
}

// NewCapture creates a snapshot writer. An empty outputDir writes
// into the working directory.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{outputDir: outputDir, prefix: prefix}
}

// CaptureFrame renders a character frame into a PNG image, one 7x13
// glyph box per cell. Colored edge cells keep their color, fill cells
// draw in a neutral light gray.
func (c *Capture) CaptureFrame(f *render.Frame) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, f.W*cellW, f.H*cellH))
	for i := range img.Pix {
		switch i % 4 {
		case 0:
			img.Pix[i] = snapshotBg.R
		case 1:
			img.Pix[i] = snapshotBg.G
		case 2:
			img.Pix[i] = snapshotBg.B
		default:
			img.Pix[i] = 255
		}
	}

	d := font.Drawer{Dst: img, Face: basicfont.Face7x13}
	buf := make([]byte, 0, f.W)
	for y := 0; y < f.H; y++ {
		x := 0
		for x < f.W {
			cell := f.At(x, y)
			if cell.Ch == ' ' {
				x++
				continue
			}
			// Runs of one color draw as a single string.
			run := color.RGBA{R: cell.R, G: cell.G, B: cell.B, A: 255}
			if !cell.Colored {
				run = snapshotFill
			}
			start := x
			buf = buf[:0]
			for x < f.W {
				cur := f.At(x, y)
				curCol := color.RGBA{R: cur.R, G: cur.G, B: cur.B, A: 255}
				if !cur.Colored {
					curCol = snapshotFill
				}
				if cur.Ch == ' ' || curCol != run {
					break
				}
				buf = append(buf, cur.Ch)
				x++
			}
			d.Src = image.NewUniform(run)
			d.Dot = fixed.P(start*cellW, y*cellH+cellTop)
			d.DrawString(string(buf))
		}
	}

	return c.save(img)
}

// CaptureFromPixels converts raw RGBA pixel data read back from the
// GPU into a PNG. Rows are flipped because OpenGL reads from the
// bottom-left corner.
func (c *Capture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return c.save(img)
}

func (c *Capture) save(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", c.prefix, timestamp)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}
