package diagram

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/drawkit/pkg/errors"
)

// Document is a complete diagram: shapes are drawn first, connections on top.
type Document struct {
	Shapes      []*Shape      `json:"shapes"`
	Connections []*Connection `json:"connections"`
}

// Elements returns all elements in drawing order.
func (d *Document) Elements() []Element {
	out := make([]Element, 0, len(d.Shapes)+len(d.Connections))
	for _, s := range d.Shapes {
		out = append(out, s)
	}
	for _, c := range d.Connections {
		out = append(out, c)
	}
	return out
}

// Shape returns the shape with the given ID.
func (d *Document) Shape(id string) (*Shape, bool) {
	for _, s := range d.Shapes {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Read decodes a JSON document from r.
//
// The input must be a JSON object with "shapes" and "connections" arrays:
//
//	{
//	  "shapes": [{"id": "a", "x": 10, "y": 10, "width": 50, "height": 30}],
//	  "connections": [{"id": "c", "source": "a", "waypoints": [{"x": 0, "y": 0}, {"x": 10, "y": 0}]}]
//	}
//
// Elements without an ID are assigned a random UUID. Missing width/height
// stay zero. Read returns an INVALID_DIAGRAM error when the JSON is malformed,
// an ID is duplicated, or a connection names an unknown source/target shape.
// Read does not close r.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDiagram, err, "decode document")
	}
	if err := doc.normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads the JSON document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Marshal encodes the document as indented JSON. The output is
// deterministic for a given document and is used as the cache key source.
func Marshal(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return buf.Bytes(), nil
}

func (d *Document) normalize() error {
	seen := make(map[string]bool)
	claim := func(id string) error {
		if seen[id] {
			return errors.New(errors.ErrCodeInvalidDiagram, "duplicate ID").For(id)
		}
		seen[id] = true
		return nil
	}

	shapes := d.Shapes[:0]
	for _, s := range d.Shapes {
		if s == nil {
			continue
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if err := claim(s.ID); err != nil {
			return err
		}
		shapes = append(shapes, s)
	}
	d.Shapes = shapes

	conns := d.Connections[:0]
	for _, c := range d.Connections {
		if c == nil {
			continue
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if err := claim(c.ID); err != nil {
			return err
		}
		if c.Source != "" {
			if _, ok := d.Shape(c.Source); !ok {
				return errors.New(errors.ErrCodeInvalidDiagram, "unknown source %q", c.Source).For(c.ID)
			}
		}
		if c.Target != "" {
			if _, ok := d.Shape(c.Target); !ok {
				return errors.New(errors.ErrCodeInvalidDiagram, "unknown target %q", c.Target).For(c.ID)
			}
		}
		conns = append(conns, c)
	}
	d.Connections = conns
	return nil
}
