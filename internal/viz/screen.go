package viz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/pixelviz/internal/render"
)

// ErrFrameSize indicates a frame that does not match the screen.
var ErrFrameSize = errors.New("viz: frame size does not match screen")

const halfBlock = "▀"

// Screen is a terminal display surface. Every cell shows two vertically
// stacked pixels: the upper half block takes the top pixel as foreground and
// the bottom pixel as background.
type Screen struct {
	cols, rows int
	lines      []string
}

func NewScreen(cols, rows int) *Screen {
	return &Screen{cols: cols, rows: rows}
}

// Size is the pixel size, which is twice as tall as the cell grid.
func (s *Screen) Size() (int, int) { return s.cols, s.rows * 2 }

func (s *Screen) Present(f *render.Frame) error {
	if f.Width != s.cols || f.Height != s.rows*2 {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, f.Width, f.Height, s.cols, s.rows*2)
	}

	lines := make([]string, s.rows)
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		b.Reset()
		for col := 0; col < s.cols; col++ {
			top, bottom := f.At(col, row*2), f.At(col, row*2+1)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom)))
			b.WriteString(cell.Render(halfBlock))
		}
		lines[row] = b.String()
	}
	s.lines = lines
	return nil
}

func (s *Screen) String() string {
	if s.lines == nil {
		blank := strings.Repeat(" ", s.cols)
		lines := make([]string, s.rows)
		for i := range lines {
			lines[i] = blank
		}
		return strings.Join(lines, "\n")
	}
	return strings.Join(s.lines, "\n")
}

// hex ignores alpha; the terminal has nothing to blend against.
func hex(p [4]uint8) string {
	return colorful.Color{R: float64(p[0]) / 255, G: float64(p[1]) / 255, B: float64(p[2]) / 255}.Hex()
}
