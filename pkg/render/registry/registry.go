package registry

import (
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/errors"
	"github.com/matzehuels/drawkit/pkg/observability"
	"github.com/matzehuels/drawkit/pkg/render"
	"github.com/matzehuels/drawkit/pkg/svg"
)

const (
	// DefaultPriority is used by renderers that do not ask for a priority.
	DefaultPriority = 1000
	// FallbackPriority is the priority of the catch-all renderer.
	FallbackPriority = 1
)

// Entry is a registered renderer and its priority.
type Entry struct {
	Renderer render.Renderer
	Priority int
	Name     string
}

// Registry keeps renderers in priority order and dispatches each element to
// the first renderer that accepts it. Higher priorities are consulted first;
// renderers with equal priority keep their registration order.
//
// Registration is guarded by a mutex, so one Registry may be shared by
// concurrent readers once start-up registration is done.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	logger  *log.Logger
}

// New creates an empty registry. A nil logger uses log.Default().
func New(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{logger: logger}
}

// Register adds r at priority. Registering the same renderer twice adds a
// second entry.
func (reg *Registry) Register(r render.Renderer, priority int) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	e := Entry{Renderer: r, Priority: priority, Name: render.NameOf(r)}
	// Insert after every entry with priority >= the new one.
	i := len(reg.entries)
	for j, cur := range reg.entries {
		if cur.Priority < priority {
			i = j
			break
		}
	}
	reg.entries = slices.Insert(reg.entries, i, e)
	reg.logger.Debug("registered renderer", "name", e.Name, "priority", priority)
}

// Entries returns the registered renderers in dispatch order.
func (reg *Registry) Entries() []Entry {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return slices.Clone(reg.entries)
}

// Len returns the number of registered renderers.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.entries)
}

// For returns the first renderer whose CanRender accepts e. It returns a
// NO_RENDERER error when none does.
func (reg *Registry) For(e diagram.Element) (render.Renderer, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	kind, id := describe(e)
	for _, entry := range reg.entries {
		if entry.Renderer.CanRender(e) {
			reg.logger.Debug("dispatch", "kind", kind, "id", id, "renderer", entry.Name)
			observability.Render().OnDispatch(kind, id, entry.Name)
			return entry.Renderer, nil
		}
	}

	reg.logger.Warn("no renderer", "kind", kind, "id", id)
	observability.Render().OnNoRenderer(kind, id)
	return nil, errors.New(errors.ErrCodeNoRenderer, "no renderer for %s", kind).For(id)
}

// DrawShape draws s with the first renderer that accepts it.
func (reg *Registry) DrawShape(container *svg.Node, s *diagram.Shape) (*svg.Node, error) {
	r, err := reg.For(s)
	if err != nil {
		return nil, err
	}
	return r.DrawShape(container, s), nil
}

// DrawConnection draws c with the first renderer that accepts it.
func (reg *Registry) DrawConnection(container *svg.Node, c *diagram.Connection) (*svg.Node, error) {
	r, err := reg.For(c)
	if err != nil {
		return nil, err
	}
	return r.DrawConnection(container, c), nil
}

// Draw draws a shape or connection.
func (reg *Registry) Draw(container *svg.Node, e diagram.Element) (*svg.Node, error) {
	r, err := reg.For(e)
	if err != nil {
		return nil, err
	}
	return render.Draw(r, container, e), nil
}

// ShapePath returns the outline of s from the first renderer that accepts it.
func (reg *Registry) ShapePath(s *diagram.Shape) (string, error) {
	r, err := reg.For(s)
	if err != nil {
		return "", err
	}
	return r.ShapePath(s), nil
}

// ConnectionPath returns the outline of c from the first renderer that
// accepts it.
func (reg *Registry) ConnectionPath(c *diagram.Connection) (string, error) {
	r, err := reg.For(c)
	if err != nil {
		return "", err
	}
	return r.ConnectionPath(c), nil
}

// Path returns the outline of a shape or connection.
func (reg *Registry) Path(e diagram.Element) (string, error) {
	r, err := reg.For(e)
	if err != nil {
		return "", err
	}
	return render.Path(r, e), nil
}

func describe(e diagram.Element) (kind, id string) {
	switch el := e.(type) {
	case *diagram.Shape:
		if el != nil {
			return el.Kind().String(), el.ID
		}
		return diagram.KindShape.String(), ""
	case *diagram.Connection:
		if el != nil {
			return el.Kind().String(), el.ID
		}
		return diagram.KindConnection.String(), ""
	}
	return "element", ""
}
