package icon

// OutputFormat selects what a resolved icon looks like.
type OutputFormat string

// Supported output formats.
const (
	FormatClass     OutputFormat = "class"
	FormatSpriteURL OutputFormat = "svg_sprite_url"
	FormatSVGURL    OutputFormat = "svg_url"
	FormatSVGPath   OutputFormat = "svg_path"
	FormatSVGRaw    OutputFormat = "svg_raw"
)

var outputFormats = []OutputFormat{FormatClass, FormatSpriteURL, FormatSVGURL, FormatSVGPath, FormatSVGRaw}

// ParseOutputFormat maps a field setting to a format. Unrecognized values
// fall back to [FormatClass].
func ParseOutputFormat(s string) OutputFormat {
	f := OutputFormat(s)
	if f.Valid() {
		return f
	}
	return FormatClass
}

// OutputFormats returns every supported format.
func OutputFormats() []OutputFormat {
	return append([]OutputFormat(nil), outputFormats...)
}

// Valid reports whether f is one of the supported formats.
func (f OutputFormat) Valid() bool {
	for _, v := range outputFormats {
		if f == v {
			return true
		}
	}
	return false
}

// ExtractsFile reports whether resolving to f populates the sprite cache.
func (f OutputFormat) ExtractsFile() bool {
	return f == FormatSVGURL || f == FormatSVGPath || f == FormatSVGRaw
}

// ResolvedIcon is the output of resolving a reference. Value holds a CSS
// class, a URL, a file path or SVG markup depending on Format.
type ResolvedIcon struct {
	Format OutputFormat
	Value  string
}

// IsZero reports whether no icon was selected.
func (r ResolvedIcon) IsZero() bool { return r.Value == "" }

// String returns the resolved value.
func (r ResolvedIcon) String() string { return r.Value }
