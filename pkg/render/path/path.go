package path

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/drawkit/pkg/diagram"
)

// Component is one path instruction: a command letter followed by its
// numeric arguments, e.g. {'M', [10 10]} or {'z', nil}.
type Component struct {
	Cmd  byte
	Args []float64
}

// Move returns an absolute move-to.
func Move(x, y float64) Component { return Component{Cmd: 'M', Args: []float64{x, y}} }

// Line returns an absolute line-to.
func Line(x, y float64) Component { return Component{Cmd: 'L', Args: []float64{x, y}} }

// RelLine returns a relative line-to.
func RelLine(dx, dy float64) Component { return Component{Cmd: 'l', Args: []float64{dx, dy}} }

// Close returns a close-path instruction.
func Close() Component { return Component{Cmd: 'z'} }

// Rect returns the closed outline of the rectangle at (x,y) with size w×h,
// traced clockwise from the top-left corner:
//
//	M x,y  l w,0  l 0,h  l -w,0  z
//
// The closing instruction is always emitted, also for zero-sized rectangles.
func Rect(x, y, w, h float64) []Component {
	return []Component{
		Move(x, y),
		RelLine(w, 0),
		RelLine(0, h),
		RelLine(-w, 0),
		Close(),
	}
}

// Polyline returns the open outline through points: an absolute move to
// the first point followed by absolute lines to the rest. Docked points
// contribute their original position (see [diagram.Point.Outline]).
// No points yield no components.
func Polyline(points []diagram.Point) []Component {
	out := make([]Component, 0, len(points))
	for i, p := range points {
		p = p.Outline()
		if i == 0 {
			out = append(out, Move(p.X, p.Y))
			continue
		}
		out = append(out, Line(p.X, p.Y))
	}
	return out
}

// ToString serializes components into a path string.
//
// All tokens are joined with commas, then every comma adjacent to a command
// letter is dropped, so a component reads "M10,10" rather than "M,10,10":
//
//	[M 10 10] [l 50 0] [z]  =>  M10,10l50,0z
func ToString(components []Component) string {
	var b strings.Builder
	for _, c := range components {
		b.WriteByte(c.Cmd)
		for i, v := range c.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(FormatNumber(v))
		}
	}
	return b.String()
}

// Normalize applies the comma rule of [ToString] to an already joined path
// string: commas directly before or after a command letter are removed.
// Normalize is idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			if (i > 0 && isCommand(s[i-1])) || (i+1 < len(s) && isCommand(s[i+1])) {
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// FormatNumber formats v in its shortest exact decimal form. Negative zero
// is written as "0". Magnitudes of at least 1e21 or below 1e-6 use exponent
// notation without exponent padding ("1e+21", "1.5e-7"), the form browsers
// and other SVG producers print.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	exp := strings.TrimLeft(s[i+2:], "0")
	return s[:i+2] + exp
}

func isCommand(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
