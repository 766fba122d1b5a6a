package pipeline

import (
	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/errors"
	"github.com/matzehuels/drawkit/pkg/render"
	"github.com/matzehuels/drawkit/pkg/render/path"
	"github.com/matzehuels/drawkit/pkg/render/styles"
)

// ElementPath is the outline of one element and the renderer that
// produced it.
type ElementPath struct {
	ID       string     `json:"id"`
	Kind     string     `json:"kind"`
	Type     string     `json:"type,omitempty"`
	Renderer string     `json:"renderer"`
	Path     string     `json:"path"`
	Bounds   *path.Box `json:"bounds,omitempty"`
}

// Paths returns the outline of every element of doc in drawing order.
// Elements with an empty outline have no bounds.
func (r *Runner) Paths(doc *diagram.Document) ([]ElementPath, error) {
	reg := r.registryFor(styles.DefaultTheme(), r.Logger)

	out := make([]ElementPath, 0, len(doc.Shapes)+len(doc.Connections))
	for _, e := range doc.Elements() {
		rend, err := reg.For(e)
		if err != nil {
			return nil, err
		}

		d := render.Path(rend, e)
		ep := ElementPath{
			ID:       e.ElementID(),
			Kind:     e.Kind().String(),
			Type:     e.ElementType(),
			Renderer: render.NameOf(rend),
			Path:     d,
		}
		b, ok, err := path.BoundsOf(d)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "bounds of outline").For(ep.ID)
		}
		if ok {
			ep.Bounds = &b
		}
		out = append(out, ep)
	}
	return out, nil
}
