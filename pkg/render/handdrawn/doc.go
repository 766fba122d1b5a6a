// Package handdrawn provides a sketch-style renderer.
//
// Elements opt in with the model attribute renderer="handdrawn"; everything
// else falls through to the next renderer in the registry. Shapes are drawn
// as wobbly quadratic rectangles with a stable grey fill and a small tilt,
// connections as gently bowed cubic segments. All randomness is derived
// from the theme's sketch seed and the element ID, so output is
// reproducible.
//
// Outlines are not sketched: [Renderer.ShapePath] and
// [Renderer.ConnectionPath] return the same exact outlines as the fallback
// renderer, so hit-testing does not depend on the look.
package handdrawn
