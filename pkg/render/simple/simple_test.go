package simple

import (
	"testing"

	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/render/styles"
	"github.com/matzehuels/drawkit/pkg/svg"
)

func newRenderer() *Renderer {
	return New(styles.New(), styles.DefaultTheme())
}

func TestCanRender(t *testing.T) {
	r := newRenderer()

	tests := []struct {
		name string
		el   diagram.Element
	}{
		{"nil", nil},
		{"empty shape", &diagram.Shape{}},
		{"typed shape", &diagram.Shape{Type: "bpmn:Task", Attrs: diagram.Metadata{"renderer": "other"}}},
		{"empty connection", &diagram.Connection{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !r.CanRender(tt.el) {
				t.Errorf("CanRender(%v) = false, want true", tt.el)
			}
		})
	}
}

func TestDrawShape(t *testing.T) {
	r := newRenderer()
	container := svg.Create("g", nil)
	s := &diagram.Shape{ID: "a", X: 10, Y: 20, Width: 50, Height: 30}

	gfx := r.DrawShape(container, s)

	if gfx.Kind != "rect" {
		t.Fatalf("Kind = %q, want rect", gfx.Kind)
	}
	if len(container.Children()) != 1 || container.Children()[0] != gfx {
		t.Error("DrawShape() should append exactly one primitive")
	}

	want := map[string]string{
		"x": "0", "y": "0", "width": "50", "height": "30",
		"fill": "white", "stroke": "fuchsia", "strokeWidth": "2",
	}
	for k, v := range want {
		if got := gfx.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}

	if s.X != 10 || s.Y != 20 || s.Width != 50 || s.Height != 30 {
		t.Errorf("DrawShape() mutated the shape: %+v", s)
	}
}

func TestDrawShapeMissingSize(t *testing.T) {
	gfx := newRenderer().DrawShape(svg.Create("g", nil), &diagram.Shape{X: 5, Y: 5})
	if gfx.Get("width") != "0" || gfx.Get("height") != "0" {
		t.Errorf("missing size should draw as 0, got %s x %s", gfx.Get("width"), gfx.Get("height"))
	}
}

func TestDrawConnection(t *testing.T) {
	r := newRenderer()
	container := svg.Create("g", nil)
	c := &diagram.Connection{Waypoints: []diagram.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0, Original: &diagram.Point{X: 12, Y: 2}},
		{X: 10.5, Y: 10},
	}}

	gfx := r.DrawConnection(container, c)

	if gfx.Kind != "polyline" || gfx.Parent() != container {
		t.Fatalf("DrawConnection() = %q attached to %v", gfx.Kind, gfx.Parent())
	}
	// Drawing uses the raw waypoints, not the originals.
	if got, want := gfx.Get("points"), "0,0 10,0 10.5,10 "; got != want {
		t.Errorf("points = %q, want %q", got, want)
	}
	if gfx.Get("fill") != "none" || gfx.Get("stroke") != "fuchsia" || gfx.Get("strokeWidth") != "5" {
		t.Errorf("connection style = %v", gfx.Attrs())
	}
}

func TestUpdateLine(t *testing.T) {
	r := newRenderer()
	gfx := r.DrawConnection(svg.Create("g", nil), &diagram.Connection{
		Waypoints: []diagram.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
	})

	same := r.UpdateConnection(gfx, []diagram.Point{{X: 2, Y: 2}, {X: 3, Y: 4}})
	if same != gfx {
		t.Error("UpdateLine() should update in place")
	}
	if got := gfx.Get("points"); got != "2,2 3,4 " {
		t.Errorf("points = %q", got)
	}
	if gfx.Get("stroke") != "fuchsia" {
		t.Error("UpdateLine() should keep the style")
	}
}

func TestShapePath(t *testing.T) {
	r := newRenderer()

	tests := []struct {
		name  string
		shape *diagram.Shape
		want  string
	}{
		{"basic", &diagram.Shape{X: 10, Y: 10, Width: 50, Height: 30}, "M10,10l50,0l0,30l-50,0z"},
		{"missing size", &diagram.Shape{X: 4, Y: 8}, "M4,8l0,0l0,0l0,0z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ShapePath(tt.shape); got != tt.want {
				t.Errorf("ShapePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConnectionPath(t *testing.T) {
	r := newRenderer()

	tests := []struct {
		name      string
		waypoints []diagram.Point
		want      string
	}{
		{
			name:      "plain",
			waypoints: []diagram.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
			want:      "M0,0L10,0L10,10",
		},
		{
			name: "docked",
			waypoints: []diagram.Point{
				{X: 0, Y: 0},
				{X: 10, Y: 0, Original: &diagram.Point{X: 12, Y: 2}},
				{X: 10, Y: 10},
			},
			want: "M0,0L12,2L10,10",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ConnectionPath(&diagram.Connection{Waypoints: tt.waypoints})
			if got != tt.want {
				t.Errorf("ConnectionPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThemeApplied(t *testing.T) {
	th := styles.DefaultTheme()
	th.Accent = "#0b6e99"
	th.ConnectionStrokeWidth = 1.5
	r := New(styles.New(), th)

	gfx := r.DrawConnection(svg.Create("g", nil), &diagram.Connection{})
	if gfx.Get("stroke") != "#0b6e99" || gfx.Get("strokeWidth") != "1.5" {
		t.Errorf("theme not applied: %v", gfx.Attrs())
	}
	if gfx.Get("points") != "" {
		t.Errorf("empty connection should have no points, got %q", gfx.Get("points"))
	}
}
