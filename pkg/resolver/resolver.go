// Package resolver turns stored icon references into template output.
//
// A [Resolver] combines the reference rules from package icon with the
// sprite extractor:
//
//	r := resolver.New(resolver.Options{
//	    Extractor: sprite.NewExtractor(store, loader, logger),
//	    AssetsURL: "https://example.com/wp-content/plugins/acf-icons/assets",
//	    CacheURL:  "https://example.com/wp-content/uploads/acf-icons",
//	})
//	icon, err := r.Resolve(ctx, "font-awesome:home:fas", icon.FormatSVGPath)
//
// Errors always reach the caller. Templates that prefer to render nothing
// for a broken reference can use [Resolver.ResolveOrEmpty].
package resolver

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/goosestudio/acficons/pkg/cache"
	"github.com/goosestudio/acficons/pkg/errors"
	"github.com/goosestudio/acficons/pkg/icon"
	"github.com/goosestudio/acficons/pkg/observability"
)

// Extractor produces the cached SVG file for one icon.
type Extractor interface {
	Extract(ctx context.Context, library, style, id string) (string, error)
}

// Options configures a Resolver.
type Options struct {
	Extractor Extractor
	Cache     *cache.Store // used to read svg_raw output
	AssetsURL string       // public URL of the bundled assets directory
	CacheURL  string       // public URL of the cache root
	Logger    *log.Logger
}

// Resolver resolves icon references. It holds no per-call state and is safe
// for concurrent use when its Extractor is.
type Resolver struct {
	extractor Extractor
	cache     *cache.Store
	assetsURL string
	cacheURL  string
	logger    *log.Logger
}

// New creates a resolver. If Logger is nil, log.Default() is used.
func New(opts Options) *Resolver {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Resolver{
		extractor: opts.Extractor,
		cache:     opts.Cache,
		assetsURL: strings.TrimRight(opts.AssetsURL, "/"),
		cacheURL:  strings.TrimRight(opts.CacheURL, "/"),
		logger:    opts.Logger,
	}
}

// Resolve converts a stored reference into the requested output format.
//
// An empty reference means no icon was selected and yields a zero
// ResolvedIcon for every format. Unknown formats behave like
// icon.FormatClass. The svg_url, svg_path and svg_raw formats may populate
// the sprite cache.
func (r *Resolver) Resolve(ctx context.Context, reference string, format icon.OutputFormat) (icon.ResolvedIcon, error) {
	if reference == "" {
		return icon.ResolvedIcon{}, nil
	}
	if !format.Valid() {
		format = icon.FormatClass
	}

	ref, err := icon.ParseReference(reference)
	if err != nil {
		return icon.ResolvedIcon{}, err
	}

	start := time.Now()
	observability.Resolver().OnResolveStart(ctx, ref.Library.String(), string(format))
	value, err := r.resolve(ctx, ref, format)
	observability.Resolver().OnResolveComplete(ctx, ref.Library.String(), string(format), time.Since(start), err)
	if err != nil {
		return icon.ResolvedIcon{}, err
	}

	r.logger.Debug("resolved icon", "reference", reference, "format", format)
	return icon.ResolvedIcon{Format: format, Value: value}, nil
}

// ResolveOrEmpty is Resolve for templates: failures are logged and an
// empty string is returned so the page renders without the icon.
func (r *Resolver) ResolveOrEmpty(ctx context.Context, reference string, format icon.OutputFormat) string {
	res, err := r.Resolve(ctx, reference, format)
	if err != nil {
		r.logger.Warn("icon could not be resolved", "reference", reference, "format", format, "err", err)
		return ""
	}
	return res.Value
}

func (r *Resolver) resolve(ctx context.Context, ref icon.Reference, format icon.OutputFormat) (string, error) {
	switch format {
	case icon.FormatSpriteURL:
		return r.spriteURL(ref)
	case icon.FormatSVGURL:
		if r.cacheURL == "" {
			return "", errors.New(errors.ErrCodeInvalidConfig, "svg_url output needs a cache URL")
		}
		_, id, err := r.extract(ctx, ref)
		if err != nil {
			return "", err
		}
		return joinURL(r.cacheURL, ref.Library.String(), id+cache.Extension), nil
	case icon.FormatSVGPath:
		path, _, err := r.extract(ctx, ref)
		return path, err
	case icon.FormatSVGRaw:
		path, _, err := r.extract(ctx, ref)
		if err != nil {
			return "", err
		}
		return r.readFile(path)
	default:
		return ref.CSSClass(), nil
	}
}

// spriteURL points at the symbol inside the bundled sprite document.
func (r *Resolver) spriteURL(ref icon.Reference) (string, error) {
	if r.assetsURL == "" {
		return "", errors.New(errors.ErrCodeInvalidConfig, "svg_sprite_url output needs an assets URL")
	}
	style, err := ref.SpriteStyle()
	if err != nil {
		return "", err
	}
	id, err := ref.SymbolID()
	if err != nil {
		return "", err
	}
	return joinURL(r.assetsURL, ref.Library.String(), "sprites", style+".svg") + "#" + url.PathEscape(id), nil
}

func (r *Resolver) extract(ctx context.Context, ref icon.Reference) (path, id string, err error) {
	if r.extractor == nil {
		return "", "", errors.New(errors.ErrCodeInternal, "resolver has no sprite extractor")
	}
	style, err := ref.SpriteStyle()
	if err != nil {
		return "", "", err
	}
	id, err = ref.SymbolID()
	if err != nil {
		return "", "", err
	}
	path, err = r.extractor.Extract(ctx, ref.Library.String(), style, id)
	if err != nil {
		return "", "", err
	}
	return path, id, nil
}

func (r *Resolver) readFile(path string) (string, error) {
	if r.cache == nil {
		return "", errors.New(errors.ErrCodeInternal, "resolver has no cache store")
	}
	data, err := r.cache.Read(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return string(data), nil
}

func joinURL(base string, segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return base + "/" + strings.Join(escaped, "/")
}
