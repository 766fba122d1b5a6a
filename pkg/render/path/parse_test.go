package path

import (
	"reflect"
	"testing"

	"github.com/matzehuels/drawkit/pkg/errors"
)

func TestParseRoundTrip(t *testing.T) {
	inputs := [][]Component{
		Rect(10, 10, 50, 30),
		Rect(0, 0, 0, 0),
		{Move(0, 0), Line(10, 0), Line(10, 10)},
		{Move(1e21, 1e-7), Line(-2.5e22, 3)},
		{Move(-1.5, 2.25), Component{Cmd: 'Q', Args: []float64{5, 5, 10, 0}}, Component{Cmd: 'C', Args: []float64{1, 2, 3, 4, 5, 6}}, Component{Cmd: 'Z'}},
	}

	for _, comps := range inputs {
		s := ToString(comps)
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if !reflect.DeepEqual(got, comps) {
			t.Errorf("Parse(%q) = %+v, want %+v", s, got, comps)
		}
		if ToString(got) != s {
			t.Errorf("re-serialized %q != %q", ToString(got), s)
		}
	}
}

func TestParseSeparatorsAndRepeats(t *testing.T) {
	got, err := Parse("M 0 0 10 0 10 10 h -5 v-5 Z")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := []Component{
		Move(0, 0),
		Line(10, 0),
		Line(10, 10),
		{Cmd: 'h', Args: []float64{-5}},
		{Cmd: 'v', Args: []float64{-5}},
		{Cmd: 'Z'},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"10,10",     // number before command
		"M10",       // missing argument
		"M10,10z5",  // z with argument
		"M10,10A1",  // unsupported arc
		"M10,10L#",  // garbage
		"M10,10L1,", // odd count
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", in)
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Parse(%q) error code = %v", in, errors.GetCode(err))
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		in     string
		want   Box
		wantOK bool
	}{
		{"M10,10l50,0l0,30l-50,0z", Box{X: 10, Y: 10, W: 50, H: 30}, true},
		{"M0,0L12,2L10,10", Box{X: 0, Y: 0, W: 12, H: 10}, true},
		{"m5,5l-10,0", Box{X: -5, Y: 5, W: 10, H: 0}, true},
		{"", Box{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok, err := BoundsOf(tt.in)
			if err != nil {
				t.Fatalf("BoundsOf() error: %v", err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("BoundsOf(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBoxHelpers(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}
	b := Box{X: 5, Y: -5, W: 10, H: 5}

	if u := a.Union(b); u != (Box{X: 0, Y: -5, W: 15, H: 15}) {
		t.Errorf("Union() = %+v", u)
	}
	if p := a.Pad(2); p != (Box{X: -2, Y: -2, W: 14, H: 14}) {
		t.Errorf("Pad() = %+v", p)
	}
	if !a.Contains(10, 10) || a.Contains(11, 0) {
		t.Error("Contains() border handling wrong")
	}
	if !(Box{}).Empty() || a.Empty() {
		t.Error("Empty() wrong")
	}
}
