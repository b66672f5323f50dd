package catalog

// Stylesheet handles registered for the icon fonts.
const (
	HandleIonicons    = "ionicons"
	HandleFontAwesome = "font-awesome-5-all"
	HandleElementor   = "elementor-icons"
)

var stylesheetHandles = map[string]string{
	"ion": HandleIonicons,
	"fas": HandleFontAwesome,
	"far": HandleFontAwesome,
	"fab": HandleFontAwesome,
	"eic": HandleElementor,
}

// StylesheetHandle returns the stylesheet that provides cssClass, keyed on
// its first three characters. It returns "" for unknown prefixes.
func StylesheetHandle(cssClass string) string {
	if len(cssClass) < 3 {
		return ""
	}
	return stylesheetHandles[cssClass[:3]]
}
