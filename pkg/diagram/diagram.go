package diagram

// Kind distinguishes the two element families a renderer can draw.
type Kind int

const (
	// KindShape is a positioned, sized element drawn at its local origin.
	KindShape Kind = iota
	// KindConnection is an element drawn along absolute waypoints.
	KindConnection
)

// String returns "shape" or "connection".
func (k Kind) String() string {
	if k == KindConnection {
		return "connection"
	}
	return "shape"
}

// Metadata stores arbitrary model attributes attached to an element.
// Renderers may read it (e.g. to decide CanRender) but never mutate it.
type Metadata map[string]any

// Element is the common view of shapes and connections used by renderers
// and the registry.
type Element interface {
	ElementID() string
	ElementType() string
	Kind() Kind
}

// Point is a position on the drawing plane.
//
// Original, when set, points at the logical (undocked) position of a
// connection endpoint. Outline computation reads it in place of X/Y; drawing
// always uses X/Y. Original is a read-only back-reference and is never
// modified by this module.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Original *Point  `json:"original,omitempty"`
}

// Outline returns the coordinates to use for outline computation: the
// original position when the point is docked, the point itself otherwise.
func (p Point) Outline() Point {
	if p.Original != nil {
		return *p.Original
	}
	return p
}

// Shape is a rectangular diagram element. Width and Height are zero when the
// model leaves them unset.
type Shape struct {
	ID     string   `json:"id"`
	Type   string   `json:"type,omitempty"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width,omitempty"`
	Height float64  `json:"height,omitempty"`
	Attrs  Metadata `json:"attrs,omitempty"`
}

// ElementID implements [Element].
func (s *Shape) ElementID() string { return s.ID }

// ElementType implements [Element].
func (s *Shape) ElementType() string { return s.Type }

// Kind implements [Element].
func (s *Shape) Kind() Kind { return KindShape }

// Connection links two shapes along an ordered list of waypoints.
// Source and Target are optional shape IDs.
type Connection struct {
	ID        string   `json:"id"`
	Type      string   `json:"type,omitempty"`
	Source    string   `json:"source,omitempty"`
	Target    string   `json:"target,omitempty"`
	Waypoints []Point  `json:"waypoints"`
	Attrs     Metadata `json:"attrs,omitempty"`
}

// ElementID implements [Element].
func (c *Connection) ElementID() string { return c.ID }

// ElementType implements [Element].
func (c *Connection) ElementType() string { return c.Type }

// Kind implements [Element].
func (c *Connection) Kind() Kind { return KindConnection }

// Attr returns the string value of a model attribute, or "" when the element
// is nil, has no such attribute, or the value is not a string.
func Attr(e Element, key string) string {
	var m Metadata
	switch el := e.(type) {
	case *Shape:
		if el != nil {
			m = el.Attrs
		}
	case *Connection:
		if el != nil {
			m = el.Attrs
		}
	}
	v, _ := m[key].(string)
	return v
}
