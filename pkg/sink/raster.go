package sink

import (
	"bytes"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/drawkit/pkg/errors"
	"github.com/matzehuels/drawkit/pkg/render/path"
	"github.com/matzehuels/drawkit/pkg/svg"
)

// rasterize paints the scene onto a gg context scaled by scale. It covers
// the primitives renderers emit: groups, rect, polyline and path, with
// translate/rotate transforms and solid fills and strokes.
func rasterize(scene *Scene, scale float64, background color.Color) ([]byte, error) {
	b := scene.Bounds
	w := max(1, int(math.Ceil(b.W*scale)))
	h := max(1, int(math.Ceil(b.H*scale)))

	dc := gg.NewContext(w, h)
	if background != nil {
		dc.SetColor(background)
		dc.Clear()
	}
	dc.Scale(scale, scale)
	dc.Translate(-b.X, -b.Y)

	if err := paintNode(dc, scene.Root); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func paintNode(dc *gg.Context, n *svg.Node) error {
	dc.Push()
	defer dc.Pop()
	applyTransform(dc, n.Get("transform"))

	switch n.Kind {
	case "svg", "g":
		for _, c := range n.Children() {
			if err := paintNode(dc, c); err != nil {
				return err
			}
		}
		return nil
	case "rect":
		dc.DrawRectangle(num(n, "x"), num(n, "y"), num(n, "width"), num(n, "height"))
	case "polyline":
		for i, p := range parsePoints(n.Get("points")) {
			if i == 0 {
				dc.MoveTo(p[0], p[1])
			} else {
				dc.LineTo(p[0], p[1])
			}
		}
	case "path":
		comps, err := path.Parse(n.Get("d"))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "rasterize path")
		}
		tracePath(dc, comps)
	default:
		return nil
	}
	paint(dc, n)
	return nil
}

func tracePath(dc *gg.Context, comps []path.Component) {
	for _, c := range path.Absolute(comps) {
		a := c.Args
		switch c.Cmd {
		case 'M':
			dc.MoveTo(a[0], a[1])
		case 'L':
			dc.LineTo(a[0], a[1])
		case 'Q':
			dc.QuadraticTo(a[0], a[1], a[2], a[3])
		case 'C':
			dc.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case 'Z':
			dc.ClosePath()
		}
	}
}

func paint(dc *gg.Context, n *svg.Node) {
	fill, hasFill := parseColor(n.Get("fill"), colornames.Black)
	stroke, hasStroke := parseColor(n.Get("stroke"), nil)
	width := num(n, "strokeWidth")
	if n.Get("strokeWidth") == "" {
		width = 1
	}
	hasStroke = hasStroke && width > 0 && n.Get("strokeOpacity") != "0"

	if hasFill {
		dc.SetColor(fill)
		if hasStroke {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if !hasStroke {
		dc.ClearPath()
		return
	}

	dc.SetColor(stroke)
	dc.SetLineWidth(width)
	if dash := parseNumbers(n.Get("strokeDasharray")); len(dash) > 0 {
		dc.SetDash(dash...)
	}
	dc.Stroke()
	dc.SetDash()
}

// applyTransform supports the translate and rotate forms written by the
// graphics factory and the renderers.
func applyTransform(dc *gg.Context, t string) {
	for t != "" {
		open := strings.IndexByte(t, '(')
		end := strings.IndexByte(t, ')')
		if open < 0 || end < open {
			return
		}
		name := strings.TrimSpace(t[:open])
		args := parseNumbers(t[open+1 : end])
		t = strings.TrimLeft(t[end+1:], " ,")

		switch {
		case name == "translate" && len(args) >= 1:
			ty := 0.0
			if len(args) > 1 {
				ty = args[1]
			}
			dc.Translate(args[0], ty)
		case name == "rotate" && len(args) == 3:
			dc.RotateAbout(gg.Radians(args[0]), args[1], args[2])
		case name == "rotate" && len(args) == 1:
			dc.Rotate(gg.Radians(args[0]))
		}
	}
}

// parseColor resolves "#rgb", "#rrggbb" and SVG colour names. An empty
// value yields def; "none" and unknown values yield no colour.
func parseColor(s string, def color.Color) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return def, def != nil
	case s == "none" || s == "transparent":
		return nil, false
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if len(hex) != 6 || err != nil {
			return nil, false
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
	}
	c, ok := colornames.Map[s]
	return c, ok
}

func parsePoints(s string) [][2]float64 {
	var out [][2]float64
	for _, f := range strings.Fields(s) {
		x, y, ok := strings.Cut(f, ",")
		if !ok {
			continue
		}
		px, err1 := strconv.ParseFloat(x, 64)
		py, err2 := strconv.ParseFloat(y, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, [2]float64{px, py})
	}
	return out
}

func parseNumbers(s string) []float64 {
	var out []float64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func num(n *svg.Node, name string) float64 {
	v, _ := strconv.ParseFloat(n.Get(name), 64)
	return v
}
