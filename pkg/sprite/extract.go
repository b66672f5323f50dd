package sprite

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/goosestudio/acficons/pkg/cache"
	"github.com/goosestudio/acficons/pkg/errors"
	"github.com/goosestudio/acficons/pkg/observability"
)

// Extractor produces cached standalone SVG files from sprite documents.
// An Extractor is safe for concurrent use; concurrent requests for the same
// icon load the sprite once.
type Extractor struct {
	Cache  *cache.Store
	Loader Loader
	Logger *log.Logger
}

// NewExtractor creates an extractor. If logger is nil, log.Default() is used.
func NewExtractor(store *cache.Store, loader Loader, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{Cache: store, Loader: loader, Logger: logger}
}

// Extract returns the absolute path of the cached SVG file for icon id in
// the given library sprite style, extracting it first if needed.
//
// On SPRITE_NOT_FOUND, SYMBOL_NOT_FOUND or CACHE_WRITE_FAILURE no file is
// left at the cache path.
func (e *Extractor) Extract(ctx context.Context, library, style, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for _, name := range []string{library, style, id} {
		if err := errors.ValidateIconName(name); err != nil {
			return "", err
		}
	}

	if err := e.Cache.EnsureDir(library); err != nil {
		return "", err
	}
	path := e.Cache.Path(library, id)

	unlock := e.Cache.Lock(path)
	defer unlock()

	hit, err := e.Cache.Exists(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "stat %s", path)
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, library, id)
		e.Logger.Debug("sprite cache hit", "library", library, "icon", id)
		return path, nil
	}
	observability.Cache().OnCacheMiss(ctx, library, id)

	doc, err := e.Loader.Load(library, style)
	if err != nil {
		return "", err
	}
	sym := FindByID(doc, id)
	if sym == nil {
		return "", errors.New(errors.ErrCodeSymbolNotFound,
			"icon %q not found in %s sprite %q", id, library, style)
	}

	data, err := Standalone(sym)
	if err != nil {
		return "", err
	}
	if err := e.Cache.WriteAtomic(path, data); err != nil {
		return "", err
	}

	observability.Cache().OnCacheSet(ctx, library, id, len(data))
	e.Logger.Debug("extracted icon", "library", library, "style", style, "icon", id, "bytes", len(data))
	return path, nil
}
