package sprite

import (
	"context"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/net/html"

	"github.com/goosestudio/acficons/pkg/cache"
	"github.com/goosestudio/acficons/pkg/errors"
)

const (
	assetsRoot = "/srv/acf-icons/assets"
	cacheRoot  = "/srv/uploads/acf-icons"
)

const solidSprite = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" style="display:none">
  <symbol id="home" viewBox="0 0 576 512">
    <title>home</title>
    <path d="M280.37 148.26L96 300.11V464a16 16 0 0 0 16 16l112.06-.29"/>
  </symbol>
  <symbol id="bell" viewBox="0 0 448 512" preserveAspectRatio="xMidYMid meet">
    <path d="M224 512c35.32 0 63.97-28.65 63.97-64H160.03c0 35.35 28.65 64 63.97 64z"/>
  </symbol>
  <symbol id="linked" viewBox="0 0 10 10">
    <use xlink:href="#bell"/>
  </symbol>
</svg>
`

// countingLoader records how many times a sprite document was loaded.
type countingLoader struct {
	Loader
	calls atomic.Int32
}

func (c *countingLoader) Load(library, style string) (*html.Node, error) {
	c.calls.Add(1)
	return c.Loader.Load(library, style)
}

func newTestExtractor(t *testing.T) (*Extractor, *countingLoader, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	sprite := filepath.Join(assetsRoot, "font-awesome", "sprites", "solid.svg")
	if err := afero.WriteFile(fs, sprite, []byte(solidSprite), 0o644); err != nil {
		t.Fatal(err)
	}
	loader := &countingLoader{Loader: NewFSLoader(fs, assetsRoot)}
	logger := log.New(io.Discard)
	return NewExtractor(cache.New(fs, cacheRoot), loader, logger), loader, fs
}

func TestExtract(t *testing.T) {
	e, loader, fs := newTestExtractor(t)

	path, err := e.Extract(context.Background(), "font-awesome", "solid", "home")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}

	want := filepath.Join(cacheRoot, "font-awesome", "home.svg")
	if path != want {
		t.Errorf("Extract() = %q, want %q", path, want)
	}
	if loader.calls.Load() != 1 {
		t.Errorf("loader calls = %d, want 1", loader.calls.Load())
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	out := string(data)

	assertStandaloneSVG(t, data)
	for _, s := range []string{`viewBox="0 0 576 512"`, `<path d="M280.37`, `<title>home</title>`} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	for _, s := range []string{"<symbol", `id="home"`, "bell"} {
		if strings.Contains(out, s) {
			t.Errorf("output should not contain %q:\n%s", s, out)
		}
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	e, loader, fs := newTestExtractor(t)
	ctx := context.Background()

	first, err := e.Extract(ctx, "font-awesome", "solid", "bell")
	if err != nil {
		t.Fatalf("first Extract error: %v", err)
	}
	before, _ := afero.ReadFile(fs, first)
	info1, _ := fs.Stat(first)

	second, err := e.Extract(ctx, "font-awesome", "solid", "bell")
	if err != nil {
		t.Fatalf("second Extract error: %v", err)
	}
	after, _ := afero.ReadFile(fs, second)
	info2, _ := fs.Stat(second)

	if first != second {
		t.Errorf("paths differ: %q vs %q", first, second)
	}
	if string(before) != string(after) {
		t.Error("file contents changed between calls")
	}
	if !info1.ModTime().Equal(info2.ModTime()) {
		t.Error("second call rewrote the cache file")
	}
	if loader.calls.Load() != 1 {
		t.Errorf("loader calls = %d, want 1", loader.calls.Load())
	}
}

func TestExtractExistingFileIsTrusted(t *testing.T) {
	e, loader, fs := newTestExtractor(t)

	path := filepath.Join(cacheRoot, "font-awesome", "home.svg")
	if err := afero.WriteFile(fs, path, []byte("<svg>stale</svg>"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := e.Extract(context.Background(), "font-awesome", "solid", "home")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if got != path {
		t.Errorf("Extract() = %q, want %q", got, path)
	}
	if loader.calls.Load() != 0 {
		t.Errorf("loader calls = %d, want 0 on cache hit", loader.calls.Load())
	}
	data, _ := afero.ReadFile(fs, path)
	if string(data) != "<svg>stale</svg>" {
		t.Errorf("existing cache file was replaced: %q", data)
	}
}

func TestExtractSymbolNotFound(t *testing.T) {
	e, _, fs := newTestExtractor(t)

	_, err := e.Extract(context.Background(), "font-awesome", "solid", "not-a-real-icon")
	if !errors.Is(err, errors.ErrCodeSymbolNotFound) {
		t.Fatalf("Extract error = %v, want SYMBOL_NOT_FOUND", err)
	}

	path := filepath.Join(cacheRoot, "font-awesome", "not-a-real-icon.svg")
	if ok, _ := afero.Exists(fs, path); ok {
		t.Error("no file should be created for a missing symbol")
	}
	infos, _ := afero.ReadDir(fs, filepath.Join(cacheRoot, "font-awesome"))
	if len(infos) != 0 {
		t.Errorf("cache directory should be empty, has %d entries", len(infos))
	}
}

func TestExtractSpriteNotFound(t *testing.T) {
	e, _, fs := newTestExtractor(t)

	_, err := e.Extract(context.Background(), "font-awesome", "brands", "github")
	if !errors.Is(err, errors.ErrCodeSpriteNotFound) {
		t.Fatalf("Extract error = %v, want SPRITE_NOT_FOUND", err)
	}
	if ok, _ := afero.Exists(fs, filepath.Join(cacheRoot, "font-awesome", "github.svg")); ok {
		t.Error("no file should be created for a missing sprite")
	}
}

func TestExtractNotSVG(t *testing.T) {
	e, _, fs := newTestExtractor(t)
	bogus := filepath.Join(assetsRoot, "ionicons", "sprites", "ionicons.svg")
	if err := afero.WriteFile(fs, bogus, []byte("not a sprite"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := e.Extract(context.Background(), "ionicons", "ionicons", "settings")
	if !errors.Is(err, errors.ErrCodeSpriteNotFound) {
		t.Fatalf("Extract error = %v, want SPRITE_NOT_FOUND", err)
	}
}

func TestExtractInvalidNames(t *testing.T) {
	e, loader, _ := newTestExtractor(t)
	ctx := context.Background()

	cases := [][3]string{
		{"font-awesome", "solid", "../../etc/passwd"},
		{"font-awesome", "solid", ""},
		{"../font-awesome", "solid", "home"},
		{"font-awesome", "so/lid", "home"},
	}
	for _, c := range cases {
		_, err := e.Extract(ctx, c[0], c[1], c[2])
		if !errors.Is(err, errors.ErrCodeInvalidIconName) {
			t.Errorf("Extract(%q) error = %v, want INVALID_ICON_NAME", c, err)
		}
	}
	if loader.calls.Load() != 0 {
		t.Errorf("loader should not be called for invalid names, got %d calls", loader.calls.Load())
	}
}

func TestExtractReadOnlyCache(t *testing.T) {
	base := afero.NewMemMapFs()
	sprite := filepath.Join(assetsRoot, "font-awesome", "sprites", "solid.svg")
	if err := afero.WriteFile(base, sprite, []byte(solidSprite), 0o644); err != nil {
		t.Fatal(err)
	}
	ro := afero.NewReadOnlyFs(base)
	e := NewExtractor(cache.New(ro, cacheRoot), NewFSLoader(ro, assetsRoot), log.New(io.Discard))

	_, err := e.Extract(context.Background(), "font-awesome", "solid", "home")
	if !errors.Is(err, errors.ErrCodeCacheWrite) {
		t.Fatalf("Extract error = %v, want CACHE_WRITE_FAILURE", err)
	}
}

func TestExtractXlinkNamespace(t *testing.T) {
	e, _, fs := newTestExtractor(t)

	path, err := e.Extract(context.Background(), "font-awesome", "solid", "linked")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	data, _ := afero.ReadFile(fs, path)
	out := string(data)

	assertStandaloneSVG(t, data)
	if !strings.Contains(out, `xmlns:xlink="http://www.w3.org/1999/xlink"`) {
		t.Errorf("missing xlink namespace declaration:\n%s", out)
	}
	if !strings.Contains(out, `xlink:href="#bell"`) {
		t.Errorf("xlink:href not preserved:\n%s", out)
	}
}

func TestExtractCanceledContext(t *testing.T) {
	e, loader, _ := newTestExtractor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Extract(ctx, "font-awesome", "solid", "home"); err != context.Canceled {
		t.Errorf("Extract error = %v, want context.Canceled", err)
	}
	if loader.calls.Load() != 0 {
		t.Error("loader should not be called after cancellation")
	}
}

func TestExtractConcurrentFirstAccess(t *testing.T) {
	e, loader, _ := newTestExtractor(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	paths := make([]string, 16)
	errs := make([]error, 16)
	for i := range paths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			paths[i], errs[i] = e.Extract(ctx, "font-awesome", "solid", "home")
		}(i)
	}
	wg.Wait()

	for i := range paths {
		if errs[i] != nil {
			t.Fatalf("goroutine %d error: %v", i, errs[i])
		}
		if paths[i] != paths[0] {
			t.Errorf("goroutine %d path = %q, want %q", i, paths[i], paths[0])
		}
	}
	if loader.calls.Load() != 1 {
		t.Errorf("loader calls = %d, want 1", loader.calls.Load())
	}
}

// assertStandaloneSVG checks that data is well-formed XML with an <svg>
// root element in the SVG namespace.
func assertStandaloneSVG(t *testing.T, data []byte) {
	t.Helper()

	dec := xml.NewDecoder(strings.NewReader(string(data)))
	var root *xml.StartElement
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v\n%s", err, data)
		}
		if se, ok := tok.(xml.StartElement); ok && root == nil {
			se := se.Copy()
			root = &se
		}
	}

	if root == nil {
		t.Fatalf("no root element in output:\n%s", data)
	}
	if root.Name.Local != "svg" {
		t.Errorf("root element = <%s>, want <svg>", root.Name.Local)
	}
	if root.Name.Space != svgNamespace {
		t.Errorf("root namespace = %q, want %q", root.Name.Space, svgNamespace)
	}
	if strings.Count(string(data), `xmlns="`) != 1 {
		t.Errorf("expected exactly one default namespace declaration:\n%s", data)
	}
}
