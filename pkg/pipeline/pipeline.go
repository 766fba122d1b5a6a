// Package pipeline renders diagram documents for the CLI and HTTP API.
//
// A [Runner] takes a parsed document and a set of [Options], builds a
// renderer registry for the requested theme and produces one artifact per
// format. Artifacts are cached by document hash and options, so repeated
// renders of an unchanged document are served from the cache.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	    Padding: 10,
//	})
//	svg := result.Artifacts["svg"]
//
// [Runner.Paths] returns the outline of every element without drawing.
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawkit/pkg/cache"
	"github.com/matzehuels/drawkit/pkg/errors"
	"github.com/matzehuels/drawkit/pkg/render/styles"
	"github.com/matzehuels/drawkit/pkg/sink"
)

// Format constants for output formats.
const (
	FormatSVG    = "svg"
	FormatPNG    = "png"
	FormatPDF    = "pdf"
	FormatDOT    = "dot"
	FormatDOTSVG = "dot-svg"
)

// DefaultPadding is the margin around the diagram used when callers do not
// choose one.
const DefaultPadding = sink.DefaultPadding

// ValidFormats is the set of supported output formats, in display order.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatDOT, FormatDOTSVG}

// Extension returns the file extension written for format.
func Extension(format string) string {
	if format == FormatDOTSVG {
		return ".dot.svg"
	}
	return "." + format
}

// ContentType returns the MIME type of an artifact.
func ContentType(format string) string {
	switch format {
	case FormatSVG, FormatDOTSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatDOT:
		return "text/vnd.graphviz"
	}
	return "application/octet-stream"
}

// Options configures one render.
type Options struct {
	Formats  []string     `json:"formats,omitempty"`
	Theme    styles.Theme `json:"-"`
	Padding  float64      `json:"padding"`
	Outlines bool         `json:"outlines,omitempty"`
	Detailed bool         `json:"detailed,omitempty"` // DOT labels include type and attributes
	Refresh  bool         `json:"refresh,omitempty"`  // skip cache reads

	Logger *log.Logger `json:"-"`
}

// Result holds the artifacts of one render.
type Result struct {
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// DocHash is the content hash of the document.
	DocHash string

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool

	Stats Stats
}

// Stats contains render statistics.
type Stats struct {
	Shapes      int
	Connections int
	RenderTime  time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults: SVG
// output, the default theme and a discarding logger. Duplicate formats are
// removed.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "padding must not be negative, got %v", o.Padding)
	}
	if o.Theme == (styles.Theme{}) {
		o.Theme = styles.DefaultTheme()
	}
	if err := o.Theme.Validate(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format, themeHash string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:    format,
		ThemeHash: themeHash,
		Padding:   o.Padding,
		Outlines:  o.Outlines,
	}
	if format == FormatDOT || format == FormatDOTSVG {
		// Node-link output ignores theme and padding.
		opts = cache.ArtifactKeyOpts{Format: format, Detailed: o.Detailed}
	}
	return opts
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
