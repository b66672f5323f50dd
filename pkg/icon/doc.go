// Package icon defines the stored icon reference and the per-library rules
// used to turn it into CSS classes and sprite lookups.
//
// # Reference Format
//
// An icon picked in the admin is stored as a single colon-delimited string:
//
//	library:cssFragment:styleTemplate
//
// For example "font-awesome:home:fas" or "ionicons:settings:ion-md-%". Fields
// are not escaped, so neither the fragment nor the template may contain a
// colon. [ParseReference] enforces exactly three fields.
//
// # CSS Classes
//
// [Reference.CSSClass] substitutes every "%" in the template with the
// fragment. Templates without a placeholder are treated as a prefix class:
//
//	ionicons:settings:ion-md-%  → "ion-md-settings"
//	font-awesome:home:fas       → "fas home"
//
// # Libraries
//
// Each [Library] has an entry in a fixed rules table that selects the sprite
// document ([Reference.SpriteStyle]) and normalizes the symbol id
// ([Reference.SymbolID]). Unknown libraries and unknown Font Awesome style
// prefixes are rejected instead of falling through to a default.
package icon
