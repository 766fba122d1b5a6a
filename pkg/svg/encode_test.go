package svg

import "testing"

func TestAttrName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"strokeWidth", "stroke-width"},
		{"fill", "fill"},
		{"pointerEvents", "pointer-events"},
		{"strokeOpacity", "stroke-opacity"},
		{"viewBox", "viewBox"},
		{"data-element-id", "data-element-id"},
		{"xlink:href", "xlink:href"},
	}

	for _, tt := range tests {
		if got := AttrName(tt.in); got != tt.want {
			t.Errorf("AttrName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarshal(t *testing.T) {
	root := Root().Attr(map[string]string{"viewBox": "0 0 10 10"})
	g := Group(root).Attr(map[string]string{"transform": Translate(1, 2)})
	Rect(g, 0, 0, 5, 5).Attr(map[string]string{"strokeWidth": "2", "fill": "white"})
	Create("title", nil).AppendTo(root).Text = "a < b"

	want := `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
  <g transform="translate(1,2)">
    <rect fill="white" height="5" stroke-width="2" width="5" x="0" y="0"/>
  </g>
  <title>a &lt; b</title>
</svg>
`
	if got := string(Marshal(root)); got != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalEscapesAttributes(t *testing.T) {
	n := Create("g", map[string]string{"data-element-id": `a"<b>`})
	want := `<g data-element-id="a&#34;&lt;b&gt;"/>` + "\n"
	if got := string(Marshal(n)); got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}
