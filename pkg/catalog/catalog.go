package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goosestudio/acficons/pkg/errors"
	"github.com/goosestudio/acficons/pkg/icon"
)

// MetadataFile is the file name of a library's metadata inside its
// assets directory.
const MetadataFile = "icons.json"

// Entry is one pickable icon.
type Entry struct {
	Key        string            `json:"key"`
	Label      string            `json:"label"`
	Unicode    string            `json:"unicode"`
	Library    icon.Library      `json:"library"`
	Styles     []string          `json:"styles"`
	Templates  map[string]string `json:"templates"`
	CSS        string            `json:"css"`
	References map[string]string `json:"references"`
}

// Reference returns the decoded reference for style.
func (e Entry) Reference(style string) (icon.Reference, error) {
	tmpl, ok := e.Templates[style]
	if !ok {
		return icon.Reference{}, errors.New(errors.ErrCodeUnknownStyle,
			"icon %q has no style %q", e.Key, style)
	}
	return icon.NewReference(e.Library, e.CSS, tmpl)
}

// Catalog is a sorted list of entries.
type Catalog struct {
	Entries []Entry
}

// Build reads every known metadata file under assetsPath.
func Build(fsys afero.Fs, assetsPath string) (*Catalog, error) {
	byKey := make(map[string]Entry)
	for _, src := range sources {
		path := filepath.Join(assetsPath, string(src.library), MetadataFile)
		data, err := afero.ReadFile(fsys, path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "read %s", path)
		}
		entries, err := src.parse(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "parse %s", path)
		}
		for _, e := range entries {
			e.References = references(e)
			byKey[e.Key] = e
		}
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c := &Catalog{Entries: make([]Entry, len(keys))}
	for i, k := range keys {
		c.Entries[i] = byKey[k]
	}
	return c, nil
}

// Lookup returns the entry with the given key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	i := sort.Search(len(c.Entries), func(i int) bool { return c.Entries[i].Key >= key })
	if i < len(c.Entries) && c.Entries[i].Key == key {
		return c.Entries[i], true
	}
	return Entry{}, false
}

// Filter returns the entries of lib whose key or label contains query
// (case-insensitive). An empty lib or query matches everything.
func (c *Catalog) Filter(lib icon.Library, query string) []Entry {
	query = strings.ToLower(query)
	var out []Entry
	for _, e := range c.Entries {
		if lib != "" && e.Library != lib {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Key), query) &&
			!strings.Contains(strings.ToLower(e.Label), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// WriteJSON encodes entries as a JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// WriteScript writes entries as a JavaScript variable declaration for
// pickers that load the catalog with a <script> tag.
func WriteScript(w io.Writer, varName string, entries []Entry) error {
	if _, err := fmt.Fprintf(w, "let %s = ", varName); err != nil {
		return err
	}
	var buf strings.Builder
	if err := WriteJSON(&buf, entries); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s;\n", strings.TrimSuffix(buf.String(), "\n"))
	return err
}

func references(e Entry) map[string]string {
	refs := make(map[string]string, len(e.Styles))
	for _, style := range e.Styles {
		ref, err := e.Reference(style)
		if err != nil {
			continue
		}
		refs[style] = ref.String()
	}
	return refs
}

var titleCaser = cases.Title(language.English)

// labelFor turns "arrow-round-back" into "Arrow Round Back".
func labelFor(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}
