// Package styles resolves the attribute sets renderers attach to drawing
// primitives.
//
// # Traits
//
// A trait is a named attribute bundle. [Styles.Style] merges the requested
// traits in order and applies per-call overrides last:
//
//	s := styles.New()
//	line := s.Style([]string{styles.TraitNoFill}, styles.Attrs{"stroke": "fuchsia", "strokeWidth": "5"})
//
// Known traits are "no-fill" (fill: none), "no-border" (strokeOpacity: 0)
// and "no-events" (pointerEvents: none).
//
// # Themes
//
// A [Theme] carries the colours and widths used by the built-in renderers.
// [DefaultTheme] reproduces the fallback look; [LoadTheme] reads overrides
// from a TOML file.
package styles
