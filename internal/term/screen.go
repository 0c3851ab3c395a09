package term

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/g0blinResearch/asciirender/internal/engine/render"
)

// Screen writes rendered frames to a terminal with ANSI positioning
// and 24-bit color. Each frame redraws in place from the home
// position instead of clearing, which avoids flicker.
type Screen struct {
	out *bufio.Writer
	buf []byte
}

// NewScreen wraps the writer, normally os.Stdout.
func NewScreen(w io.Writer) *Screen {
	return &Screen{out: bufio.NewWriterSize(w, 1<<16)}
}

// Start clears the terminal and hides the cursor.
func (s *Screen) Start() error {
	_, err := s.out.WriteString("\x1b[2J\x1b[H\x1b[?25l")
	if err != nil {
		return err
	}
	return s.out.Flush()
}

// Stop restores the cursor and clears the screen.
func (s *Screen) Stop() error {
	_, err := s.out.WriteString("\x1b[?25h\x1b[2J\x1b[H")
	if err != nil {
		return err
	}
	return s.out.Flush()
}

// Draw emits one frame plus a status line. Color escapes are only
// emitted on transitions, so a mostly monochrome frame costs little
// more than its raw characters. Rows end in CRLF because raw mode
// disables output postprocessing.
func (s *Screen) Draw(f *render.Frame, status string) error {
	b := s.buf[:0]
	b = append(b, "\x1b[H"...)

	var cr, cg, cb uint8
	colored := false
	for y := 0; y < f.H; y++ {
		row := y * f.W
		for x := 0; x < f.W; x++ {
			cell := f.Cells[row+x]
			if cell.Colored {
				if !colored || cell.R != cr || cell.G != cg || cell.B != cb {
					b = appendColor(b, cell.R, cell.G, cell.B)
					cr, cg, cb = cell.R, cell.G, cell.B
					colored = true
				}
			} else if colored {
				b = append(b, "\x1b[0m"...)
				colored = false
			}
			b = append(b, cell.Ch)
		}
		if colored {
			b = append(b, "\x1b[0m"...)
			colored = false
		}
		b = append(b, '\r', '\n')
	}

	b = append(b, status...)
	b = append(b, "\x1b[K"...)

	s.buf = b
	if _, err := s.out.Write(b); err != nil {
		return err
	}
	return s.out.Flush()
}

// Plain renders a frame as ordinary text lines for one-shot output,
// with no cursor addressing, so it can be piped or redirected. Color
// escapes still mark edge cells; the final reset keeps the shell sane.
func Plain(f *render.Frame) []byte {
	b := make([]byte, 0, f.W*f.H+f.H)

	var cr, cg, cb uint8
	colored := false
	for y := 0; y < f.H; y++ {
		row := y * f.W
		for x := 0; x < f.W; x++ {
			cell := f.Cells[row+x]
			if cell.Colored {
				if !colored || cell.R != cr || cell.G != cg || cell.B != cb {
					b = appendColor(b, cell.R, cell.G, cell.B)
					cr, cg, cb = cell.R, cell.G, cell.B
					colored = true
				}
			} else if colored {
				b = append(b, "\x1b[0m"...)
				colored = false
			}
			b = append(b, cell.Ch)
		}
		if colored {
			b = append(b, "\x1b[0m"...)
			colored = false
		}
		b = append(b, '\n')
	}
	return b
}

func appendColor(b []byte, r, g, bl uint8) []byte {
	b = append(b, "\x1b[38;2;"...)
	b = strconv.AppendUint(b, uint64(r), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(g), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(bl), 10)
	b = append(b, 'm')
	return b
}

// Size returns the terminal dimensions, falling back to 80x24 when
// stdout is not a terminal.
func Size() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
