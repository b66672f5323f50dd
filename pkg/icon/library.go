package icon

import (
	"slices"
	"strings"

	"github.com/goosestudio/acficons/pkg/errors"
)

// Library identifies a bundled icon family.
type Library string

// Supported icon libraries.
const (
	FontAwesome    Library = "font-awesome"
	FontAwesomePro Library = "font-awesome-pro"
	Ionicons       Library = "ionicons"
	Elementor      Library = "elementor"
)

// Sprite document names for the single-sprite libraries.
const (
	ioniconsSprite = "ionicons"
	eiconsSprite   = "eicons"
)

// libraryRules holds the per-library dispatch used for sprite lookups.
type libraryRules struct {
	spriteStyle func(Reference) (string, error)
	symbolID    func(Reference) string
}

var rules = map[Library]libraryRules{
	FontAwesome: {
		spriteStyle: fontAwesomeStyle(fontAwesomeStyles),
		symbolID:    fontAwesomeSymbolID,
	},
	FontAwesomePro: {
		spriteStyle: fontAwesomeStyle(fontAwesomeProStyles),
		symbolID:    fontAwesomeSymbolID,
	},
	Ionicons: {
		spriteStyle: fixedStyle(ioniconsSprite),
		symbolID:    ioniconsSymbolID,
	},
	Elementor: {
		spriteStyle: fixedStyle(eiconsSprite),
		symbolID:    elementorSymbolID,
	},
}

// Font Awesome style prefixes mapped to their sprite documents.
var (
	fontAwesomeStyles = map[string]string{
		"fas": "solid",
		"far": "regular",
		"fab": "brands",
	}
	fontAwesomeProStyles = map[string]string{
		"fas": "solid",
		"far": "regular",
		"fab": "brands",
		"fal": "light",
		"fad": "duotone",
	}
)

// ParseLibrary converts a stored library name into a [Library].
func ParseLibrary(s string) (Library, error) {
	lib := Library(s)
	if _, ok := rules[lib]; !ok {
		return "", errors.New(errors.ErrCodeUnknownLibrary, "unknown icon library %q", s)
	}
	return lib, nil
}

// Libraries returns all supported libraries in a stable order.
func Libraries() []Library {
	libs := make([]Library, 0, len(rules))
	for lib := range rules {
		libs = append(libs, lib)
	}
	slices.Sort(libs)
	return libs
}

// String returns the stored library name.
func (l Library) String() string { return string(l) }

func fontAwesomeStyle(styles map[string]string) func(Reference) (string, error) {
	return func(r Reference) (string, error) {
		prefix := r.StyleTemplate
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		if style, ok := styles[prefix]; ok {
			return style, nil
		}
		return "", errors.New(errors.ErrCodeUnknownStyle,
			"unknown %s style prefix %q", r.Library, prefix)
	}
}

func fixedStyle(style string) func(Reference) (string, error) {
	return func(Reference) (string, error) { return style, nil }
}

// fontAwesomeSymbolID drops the "fa-" class prefix: Font Awesome sprites
// name their symbols "home", while stored fragments may be "fa-home".
func fontAwesomeSymbolID(r Reference) string {
	return strings.TrimPrefix(r.CSSFragment, "fa-")
}

// ioniconsSymbolID is the CSS class without its "ion-" prefix, so the
// platform variants of an icon stay apart: "ion-md-add" → "md-add",
// "ion-ios-add" → "ios-add", "ion-logo-github" → "logo-github".
func ioniconsSymbolID(r Reference) string {
	return strings.TrimPrefix(joinedClass(r), "ion-")
}

// elementorSymbolID uses the whole CSS class as the symbol id. Whitespace
// runs inside the class become dashes so that a prefix template ("eicon")
// and a pre-joined fragment ("eicon-star") address the same symbol.
func elementorSymbolID(r Reference) string {
	return joinedClass(r)
}

func joinedClass(r Reference) string {
	return strings.Join(strings.Fields(r.CSSClass()), "-")
}
