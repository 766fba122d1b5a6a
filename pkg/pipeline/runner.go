package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawkit/pkg/cache"
	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/errors"
	"github.com/matzehuels/drawkit/pkg/observability"
	"github.com/matzehuels/drawkit/pkg/render/registry"
	"github.com/matzehuels/drawkit/pkg/render/styles"
)

// Runner renders documents with caching.
//
// The Runner keeps no per-render state, so the CLI and the HTTP server can
// share one Runner across goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Registry overrides the per-theme built-in registry when set.
	Registry *registry.Registry
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// registryFor returns the registry used to draw with theme.
func (r *Runner) registryFor(theme styles.Theme, logger *log.Logger) *registry.Registry {
	if r.Registry != nil {
		return r.Registry
	}
	return registry.Default(logger, theme)
}

// Execute renders doc in every requested format. Artifacts found in the
// cache are reused unless opts.Refresh is set; fresh artifacts are stored.
func (r *Runner) Execute(ctx context.Context, doc *diagram.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	docData, err := diagram.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize document for cache key")
	}
	themeData, _ := json.Marshal(opts.Theme)
	themeHash := cache.Hash(themeData)

	result := &Result{
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		DocHash:   cache.Hash(docData),
		Stats:     Stats{Shapes: len(doc.Shapes), Connections: len(doc.Connections)},
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats, len(doc.Shapes)+len(doc.Connections))

	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(result.DocHash, opts.ArtifactKeyOpts(format, themeHash))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				logger.Debug("cache hit", "format", format)
				result.Artifacts[format] = data
				continue
			} else if err != nil {
				logger.Warn("cache read failed", "format", format, "error", err)
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		missing = append(missing, format)
	}
	result.CacheHit = len(missing) == 0

	if len(missing) > 0 {
		reg := r.registryFor(opts.Theme, logger)
		for _, format := range missing {
			data, err := Render(ctx, doc, reg, format, opts)
			if err != nil {
				observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
				return nil, err
			}
			result.Artifacts[format] = data

			key := r.Keyer.ArtifactKey(result.DocHash, opts.ArtifactKeyOpts(format, themeHash))
			if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
				logger.Warn("cache write failed", "format", format, "error", err)
			} else {
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}

	result.Stats.RenderTime = time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)
	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", result.CacheHit,
		"duration", result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
