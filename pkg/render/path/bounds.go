package path

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Empty reports whether r has no area and no extent.
func (r Box) Empty() bool { return r.W == 0 && r.H == 0 }

// Union returns the smallest rectangle containing r and o.
func (r Box) Union(o Box) Box {
	x0, y0 := math.Min(r.X, o.X), math.Min(r.Y, o.Y)
	x1, y1 := math.Max(r.X+r.W, o.X+o.W), math.Max(r.Y+r.H, o.Y+o.H)
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Pad grows r by p on every side.
func (r Box) Pad(p float64) Box {
	return Box{X: r.X - p, Y: r.Y - p, W: r.W + 2*p, H: r.H + 2*p}
}

// Contains reports whether (x,y) lies inside r or on its border.
func (r Box) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Absolute rewrites components into absolute M, L, Q, C and Z commands,
// resolving relative coordinates and H/V shorthands. The input is not
// modified.
func Absolute(components []Component) []Component {
	out := make([]Component, 0, len(components))
	var cx, cy, sx, sy float64
	for _, c := range components {
		a := c.Args
		switch c.Cmd {
		case 'M', 'm':
			x, y := a[0], a[1]
			if c.Cmd == 'm' {
				x, y = cx+x, cy+y
			}
			cx, cy, sx, sy = x, y, x, y
			out = append(out, Move(x, y))
		case 'L', 'l':
			x, y := a[0], a[1]
			if c.Cmd == 'l' {
				x, y = cx+x, cy+y
			}
			cx, cy = x, y
			out = append(out, Line(x, y))
		case 'H', 'h':
			x := a[0]
			if c.Cmd == 'h' {
				x += cx
			}
			cx = x
			out = append(out, Line(cx, cy))
		case 'V', 'v':
			y := a[0]
			if c.Cmd == 'v' {
				y += cy
			}
			cy = y
			out = append(out, Line(cx, cy))
		case 'Q', 'q', 'C', 'c':
			abs := make([]float64, len(a))
			rel := c.Cmd == 'q' || c.Cmd == 'c'
			for i := 0; i < len(a); i += 2 {
				abs[i], abs[i+1] = a[i], a[i+1]
				if rel {
					abs[i], abs[i+1] = cx+a[i], cy+a[i+1]
				}
			}
			cx, cy = abs[len(abs)-2], abs[len(abs)-1]
			cmd := byte('Q')
			if c.Cmd == 'C' || c.Cmd == 'c' {
				cmd = 'C'
			}
			out = append(out, Component{Cmd: cmd, Args: abs})
		case 'Z', 'z':
			cx, cy = sx, sy
			out = append(out, Component{Cmd: 'Z'})
		}
	}
	return out
}

// Bounds returns the bounding box of all points the components visit,
// including curve control points. ok is false when there are no points.
func Bounds(components []Component) (r Box, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range Absolute(components) {
		for i := 0; i+1 < len(c.Args); i += 2 {
			x, y := c.Args[i], c.Args[i+1]
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			ok = true
		}
	}
	if !ok {
		return Box{}, false
	}
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

// BoundsOf parses s and returns its bounds.
func BoundsOf(s string) (Box, bool, error) {
	comps, err := Parse(s)
	if err != nil {
		return Box{}, false, err
	}
	r, ok := Bounds(comps)
	return r, ok, nil
}
