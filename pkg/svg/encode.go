package svg

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"slices"
	"strings"
	"unicode"
)

// keepCase lists SVG attributes whose camelCase spelling is significant.
var keepCase = map[string]bool{
	"viewBox":             true,
	"preserveAspectRatio": true,
}

// AttrName converts a style key such as "strokeWidth" to the SVG attribute
// name "stroke-width". Names that are already hyphenated, namespaced or
// listed in keepCase are returned unchanged.
func AttrName(key string) string {
	if keepCase[key] || strings.ContainsAny(key, "-:") {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Encode writes n and its descendants as indented SVG markup. Attributes are
// written in sorted order so output is deterministic.
func Encode(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	encodeNode(bw, n, 0)
	return bw.Flush()
}

// Marshal returns the encoded markup of n.
func Marshal(n *Node) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, n)
	return buf.Bytes()
}

func encodeNode(w *bufio.Writer, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	w.WriteString(indent)
	w.WriteByte('<')
	w.WriteString(n.Kind)

	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int { return strings.Compare(AttrName(a), AttrName(b)) })
	for _, k := range keys {
		w.WriteByte(' ')
		w.WriteString(AttrName(k))
		w.WriteString(`="`)
		w.WriteString(escape(n.attrs[k]))
		w.WriteByte('"')
	}

	switch {
	case len(n.children) == 0 && n.Text == "":
		w.WriteString("/>\n")
	case len(n.children) == 0:
		w.WriteByte('>')
		w.WriteString(escape(n.Text))
		w.WriteString("</" + n.Kind + ">\n")
	default:
		w.WriteString(">\n")
		if n.Text != "" {
			w.WriteString(indent + "  " + escape(n.Text) + "\n")
		}
		for _, c := range n.children {
			encodeNode(w, c, depth+1)
		}
		w.WriteString(indent + "</" + n.Kind + ">\n")
	}
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
