package styles

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/drawkit/pkg/errors"
)

// Theme holds the colours and stroke widths renderers build their styles
// from. The zero value is not useful; start from [DefaultTheme].
type Theme struct {
	Accent                string  `toml:"accent"`
	ShapeFill             string  `toml:"shape_fill"`
	ShapeStrokeWidth      float64 `toml:"shape_stroke_width"`
	ConnectionStrokeWidth float64 `toml:"connection_stroke_width"`

	Sketch SketchTheme `toml:"sketch"`
}

// SketchTheme configures the hand-drawn renderer.
type SketchTheme struct {
	Seed uint64 `toml:"seed"`
	Ink  string `toml:"ink"`
}

// DefaultTheme returns the fallback look: white shapes with a fuchsia
// 2px border and 5px fuchsia connections.
func DefaultTheme() Theme {
	return Theme{
		Accent:                "fuchsia",
		ShapeFill:             "white",
		ShapeStrokeWidth:      2,
		ConnectionStrokeWidth: 5,
		Sketch: SketchTheme{
			Seed: 42,
			Ink:  "#333333",
		},
	}
}

// ParseTheme decodes a TOML theme on top of [DefaultTheme]. Keys that are
// not part of the theme are rejected.
//
//	accent = "#0b6e99"
//	shape_stroke_width = 1.5
//
//	[sketch]
//	seed = 7
func ParseTheme(data string) (Theme, error) {
	t := DefaultTheme()
	md, err := toml.Decode(data, &t)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme keys: %s", strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadTheme reads a TOML theme file.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Theme{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read theme %s", path)
	}
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", path)
	}
	return ParseTheme(string(data))
}

// Validate checks that colours are set and widths are not negative.
func (t Theme) Validate() error {
	switch {
	case t.Accent == "":
		return errors.New(errors.ErrCodeInvalidTheme, "accent colour must not be empty")
	case t.ShapeFill == "":
		return errors.New(errors.ErrCodeInvalidTheme, "shape fill must not be empty")
	case t.ShapeStrokeWidth < 0:
		return errors.New(errors.ErrCodeInvalidTheme, "shape stroke width must not be negative")
	case t.ConnectionStrokeWidth < 0:
		return errors.New(errors.ErrCodeInvalidTheme, "connection stroke width must not be negative")
	}
	return nil
}
