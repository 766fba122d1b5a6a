// Package svg is the retained drawing surface renderers draw into.
//
// Primitives are [Node] values created with [Create] (or the [Rect] and
// [Group] helpers), styled with [Node.Attr] and attached with
// [Node.AppendTo]. A renderer returns the node it created; callers keep it
// as a handle and update it in place with Attr on redraw.
//
//	root := svg.Root()
//	r := svg.Rect(root, 0, 0, 50, 30).Attr(map[string]string{"fill": "white"})
//	r.Attr(map[string]string{"width": "60"})
//
// Style keys use camelCase ("strokeWidth"); [Encode] writes them as SVG
// attribute names ("stroke-width").
package svg
