package registry

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawkit/pkg/render/handdrawn"
	"github.com/matzehuels/drawkit/pkg/render/simple"
	"github.com/matzehuels/drawkit/pkg/render/styles"
)

// Default returns a registry with the built-in renderers for theme: the
// sketch renderer at DefaultPriority and the fallback at FallbackPriority.
func Default(logger *log.Logger, theme styles.Theme) *Registry {
	s := styles.New()
	reg := New(logger)
	reg.Register(handdrawn.New(s, theme), DefaultPriority)
	reg.Register(simple.New(s, theme), FallbackPriority)
	return reg
}
