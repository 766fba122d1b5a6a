package handdrawn

import (
	"math"

	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/render/path"
)

const (
	maxWobble    = 3.0
	maxRotation  = 1.2
	straightEdge = 40.0
	maxBow       = 8.0
)

// wobbledRect traces a rectangle whose corners and sides are slightly off,
// as if drawn by hand. The result is deterministic for (seed, id).
func wobbledRect(x, y, w, h float64, seed uint64, id string) string {
	r := newRNG(hash(id, seed))
	amp := math.Min(maxWobble, math.Min(w, h)*0.1)

	corners := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := range corners {
		corners[i][0] += r.between(amp)
		corners[i][1] += r.between(amp)
	}

	cs := make([]path.Component, 0, 6)
	cs = append(cs, path.Move(round(corners[0][0]), round(corners[0][1])))
	for i := range corners {
		from, to := corners[i], corners[(i+1)%4]
		cx := (from[0]+to[0])/2 + r.between(amp)
		cy := (from[1]+to[1])/2 + r.between(amp)
		cs = append(cs, path.Component{
			Cmd:  'Q',
			Args: []float64{round(cx), round(cy), round(to[0]), round(to[1])},
		})
	}
	cs = append(cs, path.Component{Cmd: 'Z'})
	return path.ToString(cs)
}

// curvedEdge draws a single segment, bowed when it is long enough.
func curvedEdge(x1, y1, x2, y2 float64) string {
	cs := append([]path.Component{path.Move(round(x1), round(y1))}, segment(x1, y1, x2, y2, 1)...)
	return path.ToString(cs)
}

// sketchLine draws a connection through points, alternating the bow
// direction from one segment to the next.
func sketchLine(points []diagram.Point) string {
	if len(points) == 0 {
		return ""
	}
	cs := []path.Component{path.Move(round(points[0].X), round(points[0].Y))}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		dir := 1.0
		if i%2 == 0 {
			dir = -1
		}
		cs = append(cs, segment(a.X, a.Y, b.X, b.Y, dir)...)
	}
	return path.ToString(cs)
}

func segment(x1, y1, x2, y2, dir float64) []path.Component {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length < straightEdge {
		return []path.Component{path.Line(round(x2), round(y2))}
	}

	bow := math.Min(maxBow, length*0.05) * dir
	nx, ny := -dy/length*bow, dx/length*bow
	return []path.Component{{
		Cmd: 'C',
		Args: []float64{
			round(x1 + dx/3 + nx), round(y1 + dy/3 + ny),
			round(x1 + 2*dx/3 + nx), round(y1 + 2*dy/3 + ny),
			round(x2), round(y2),
		},
	}}
}

// rotationFor returns a small tilt in degrees. Large shapes tilt less so
// their far edges stay close to the outline.
func rotationFor(id string, w, h float64) float64 {
	limit := maxRotation
	if size := math.Max(w, h); size > 100 {
		limit *= 100 / size
	}
	return round(newRNG(hash(id, 7)).between(limit))
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
