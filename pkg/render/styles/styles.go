package styles

import (
	"maps"
	"slices"
)

// Attrs is a resolved style: attribute names (camelCase, e.g. "strokeWidth")
// mapped to their string values. Resolved styles are never shared; every
// call to [Styles.Style] returns a fresh map.
type Attrs map[string]string

// Keys returns the attribute names in sorted order.
func (a Attrs) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Trait names understood by [Styles.Style].
const (
	TraitNoFill   = "no-fill"
	TraitNoBorder = "no-border"
	TraitNoEvents = "no-events"
)

var defaultTraits = map[string]Attrs{
	TraitNoFill:   {"fill": "none"},
	TraitNoBorder: {"strokeOpacity": "0"},
	TraitNoEvents: {"pointerEvents": "none"},
}

// Styles resolves style attributes from named traits and per-call overrides.
// It holds no per-element state.
type Styles struct {
	traits map[string]Attrs
}

// New returns a resolver with the default traits.
func New() *Styles {
	return &Styles{traits: defaultTraits}
}

// Style merges the attributes of each trait, in order, then applies
// overrides. Unknown traits are ignored.
//
//	s.Style([]string{"no-fill"}, Attrs{"stroke": "fuchsia"})
//	// {fill: none, stroke: fuchsia}
func (s *Styles) Style(traits []string, overrides Attrs) Attrs {
	out := make(Attrs)
	for _, t := range traits {
		maps.Copy(out, s.traits[t])
	}
	maps.Copy(out, overrides)
	return out
}

// Cls is [Styles.Style] with an additional "class" attribute.
func (s *Styles) Cls(class string, traits []string, overrides Attrs) Attrs {
	out := s.Style(traits, overrides)
	out["class"] = class
	return out
}
