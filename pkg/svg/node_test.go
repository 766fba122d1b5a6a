package svg

import (
	"strings"
	"testing"
)

func TestCreateAndAttr(t *testing.T) {
	attrs := map[string]string{"points": "0,0 10,0 "}
	n := Create("polyline", attrs)
	attrs["points"] = "changed"

	if got := n.Get("points"); got != "0,0 10,0 " {
		t.Errorf("Create() should copy attrs, got %q", got)
	}

	n.Attr(map[string]string{"stroke": "fuchsia", "points": "1,1 "})
	if n.Get("stroke") != "fuchsia" || n.Get("points") != "1,1 " {
		t.Errorf("Attr() did not update: %v", n.Attrs())
	}

	n.Attr(map[string]string{"stroke": ""})
	if _, ok := n.Attrs()["stroke"]; ok {
		t.Error("empty value should remove the attribute")
	}
}

func TestAppendToMovesNode(t *testing.T) {
	a, b := Group(Root()), Create("g", nil)
	child := Create("rect", nil).AppendTo(a)

	if child.Parent() != a || len(a.Children()) != 1 {
		t.Fatal("AppendTo() did not attach")
	}

	child.AppendTo(b)
	if len(a.Children()) != 0 || len(b.Children()) != 1 || child.Parent() != b {
		t.Error("AppendTo() should detach from the previous parent")
	}

	child.Remove()
	if len(b.Children()) != 0 || child.Parent() != nil {
		t.Error("Remove() did not detach")
	}
	child.Remove() // no-op
}

func TestClear(t *testing.T) {
	g := Create("g", nil)
	r1 := Rect(g, 0, 0, 1, 1)
	Rect(g, 0, 0, 2, 2)

	g.Clear()
	if len(g.Children()) != 0 || r1.Parent() != nil {
		t.Error("Clear() should detach all children")
	}
}

func TestRect(t *testing.T) {
	root := Root()
	r := Rect(root, 0, 0, 50.5, 30)

	want := map[string]string{"x": "0", "y": "0", "width": "50.5", "height": "30"}
	for k, v := range want {
		if got := r.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if r.Parent() != root {
		t.Error("Rect() should append to parent")
	}
}

func TestWalk(t *testing.T) {
	root := Root()
	g := Group(root)
	Rect(g, 0, 0, 1, 1)
	Rect(root, 0, 0, 1, 1)

	var kinds []string
	root.Walk(func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return n.Kind != "g"
	})
	if got := strings.Join(kinds, ","); got != "svg,g,rect" {
		t.Errorf("Walk() visited %s", got)
	}
}

func TestTranslate(t *testing.T) {
	if got := Translate(10, -2.5); got != "translate(10,-2.5)" {
		t.Errorf("Translate() = %q", got)
	}
}

func TestNumMatchesPathNumbers(t *testing.T) {
	a, b := 0.1, 0.2
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{50.5, "50.5"},
		{a + b, "0.30000000000000004"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
	}
	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
