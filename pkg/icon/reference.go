package icon

import (
	"strings"

	"github.com/goosestudio/acficons/pkg/errors"
)

const (
	fieldSeparator = ":"
	placeholder    = "%"
	referenceArity = 3
)

// Reference is a decoded icon selection.
type Reference struct {
	Library       Library
	CSSFragment   string // icon-specific part of the class, e.g. "home"
	StyleTemplate string // e.g. "fas" or "ion-md-%"
}

// ParseReference decodes a stored "library:cssFragment:styleTemplate" value.
//
// The split is strict: any field count other than three is an
// INVALID_REFERENCE error. The empty string is also rejected; callers that
// store "no icon" as an empty value should check for it first.
func ParseReference(s string) (Reference, error) {
	if s == "" {
		return Reference{}, errors.New(errors.ErrCodeInvalidReference, "reference is empty")
	}

	parts := strings.Split(s, fieldSeparator)
	if len(parts) != referenceArity {
		return Reference{}, errors.New(errors.ErrCodeInvalidReference,
			"reference %q has %d fields, want %d", s, len(parts), referenceArity)
	}

	lib, err := ParseLibrary(parts[0])
	if err != nil {
		return Reference{}, err
	}
	if parts[1] == "" {
		return Reference{}, errors.New(errors.ErrCodeInvalidReference,
			"reference %q has an empty css fragment", s)
	}

	return Reference{
		Library:       lib,
		CSSFragment:   parts[1],
		StyleTemplate: parts[2],
	}, nil
}

// NewReference builds a reference and checks that no field contains the
// separator, so that String round-trips through ParseReference.
func NewReference(lib Library, fragment, template string) (Reference, error) {
	if _, ok := rules[lib]; !ok {
		return Reference{}, errors.New(errors.ErrCodeUnknownLibrary, "unknown icon library %q", lib)
	}
	if fragment == "" {
		return Reference{}, errors.New(errors.ErrCodeInvalidReference, "css fragment cannot be empty")
	}
	if strings.Contains(fragment, fieldSeparator) || strings.Contains(template, fieldSeparator) {
		return Reference{}, errors.New(errors.ErrCodeInvalidReference,
			"fields cannot contain %q (fragment %q, template %q)", fieldSeparator, fragment, template)
	}
	return Reference{Library: lib, CSSFragment: fragment, StyleTemplate: template}, nil
}

// String encodes the reference in its stored form.
func (r Reference) String() string {
	return strings.Join([]string{string(r.Library), r.CSSFragment, r.StyleTemplate}, fieldSeparator)
}

// CSSClass returns the class attribute value for the icon font.
func (r Reference) CSSClass() string {
	if strings.Contains(r.StyleTemplate, placeholder) {
		return strings.ReplaceAll(r.StyleTemplate, placeholder, r.CSSFragment)
	}
	return r.StyleTemplate + " " + r.CSSFragment
}

// SpriteStyle returns the name of the sprite document (without extension)
// that holds this icon.
func (r Reference) SpriteStyle() (string, error) {
	lr, ok := rules[r.Library]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownLibrary, "unknown icon library %q", r.Library)
	}
	return lr.spriteStyle(r)
}

// SymbolID returns the id of the <symbol> element inside the sprite
// document. The id doubles as the cache file name, so it is validated.
func (r Reference) SymbolID() (string, error) {
	lr, ok := rules[r.Library]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownLibrary, "unknown icon library %q", r.Library)
	}
	id := lr.symbolID(r)
	if err := errors.ValidateIconName(id); err != nil {
		return "", err
	}
	return id, nil
}
