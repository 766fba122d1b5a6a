package svg

import (
	"maps"
	"slices"

	"github.com/matzehuels/drawkit/pkg/render/path"
)

// Node is a retained SVG primitive. Nodes form a tree through AppendTo;
// renderers return the node they created as its handle.
//
// Nodes are not safe for concurrent mutation. Callers drawing into the same
// container from several goroutines must serialize access themselves.
type Node struct {
	Kind string
	Text string

	attrs    map[string]string
	children []*Node
	parent   *Node
}

// Create returns a detached primitive of the given kind ("rect", "polyline",
// "path", "g", ...) with the given attributes.
func Create(kind string, attrs map[string]string) *Node {
	n := &Node{Kind: kind, attrs: make(map[string]string, len(attrs))}
	maps.Copy(n.attrs, attrs)
	return n
}

// Root returns an <svg> element with the SVG namespace set.
func Root() *Node {
	return Create("svg", map[string]string{"xmlns": "http://www.w3.org/2000/svg"})
}

// Attr sets or replaces attributes and returns n for chaining. An empty
// value removes the attribute.
func (n *Node) Attr(attrs map[string]string) *Node {
	for k, v := range attrs {
		if v == "" {
			delete(n.attrs, k)
			continue
		}
		n.attrs[k] = v
	}
	return n
}

// Get returns the value of an attribute, or "" when unset.
func (n *Node) Get(name string) string { return n.attrs[name] }

// Attrs returns a copy of the node's attributes.
func (n *Node) Attrs() map[string]string { return maps.Clone(n.attrs) }

// AppendTo moves n to the end of parent's children and returns n.
func (n *Node) AppendTo(parent *Node) *Node {
	n.Remove()
	n.parent = parent
	parent.children = append(parent.children, n)
	return n
}

// Remove detaches n from its parent. It is a no-op for detached nodes.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// Clear detaches all children of n.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Parent returns the node n is attached to, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in document order. The slice must not be
// modified.
func (n *Node) Children() []*Node { return n.children }

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Rect creates a rectangle primitive inside parent.
func Rect(parent *Node, x, y, w, h float64) *Node {
	return Create("rect", map[string]string{
		"x":      Num(x),
		"y":      Num(y),
		"width":  Num(w),
		"height": Num(h),
	}).AppendTo(parent)
}

// Group creates a <g> inside parent.
func Group(parent *Node) *Node {
	return Create("g", nil).AppendTo(parent)
}

// Num formats v for use in an attribute value, exactly as path data
// formats its numbers.
func Num(v float64) string { return path.FormatNumber(v) }

// Translate returns a transform attribute value moving content to (x,y).
func Translate(x, y float64) string {
	return "translate(" + Num(x) + "," + Num(y) + ")"
}
