package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// ChunkWriter collects one frame of HUD text and escape sequences and hands
// it to the terminal in packets of at most maxChunkSize bytes, which keeps
// SSH sessions responsive. Positions are 1-based and shifted by the offset
// of the centered render area.
type ChunkWriter struct {
	frame  strings.Builder
	out    *bufio.Writer
	offCol int
	offRow int
}

func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the render area, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

func (cw *ChunkWriter) moveTo(col, row int) {
	cw.frame.WriteString("\033[")
	cw.frame.WriteString(strconv.Itoa(row + cw.offRow))
	cw.frame.WriteByte(';')
	cw.frame.WriteString(strconv.Itoa(col + cw.offCol))
	cw.frame.WriteByte('H')
}

// Write buffers p until Flush.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.frame.Write(p)
}

func (cw *ChunkWriter) WriteString(s string) {
	cw.frame.WriteString(s)
}

// WriteAt writes s starting at the given cell.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.moveTo(col, row)
	cw.frame.WriteString(s)
}

// WriteColoredAt writes s at the given cell in a 24-bit foreground color.
func (cw *ChunkWriter) WriteColoredAt(col, row int, s string, c colorful.Color) {
	cw.moveTo(col, row)
	cw.frame.WriteString(Colorize(s, c))
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the buffered frame and empties the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.frame.String()
	cw.frame.Reset()
	for start := 0; start < len(data); start += maxChunkSize {
		end := min(start+maxChunkSize, len(data))
		if _, err := cw.out.WriteString(data[start:end]); err != nil {
			return err
		}
	}
	return cw.out.Flush()
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc asks the terminal behind stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// Colorize wraps s in a 24-bit foreground color and a trailing reset.
func Colorize(s string, c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", r, g, b, s)
}
