// Package catalog builds the list of pickable icons from the metadata files
// bundled with each icon library.
//
// The assets directory is expected to contain one metadata file per
// library:
//
//	<assets>/font-awesome/icons.json   {"<name>": {"label", "unicode", "styles"}}
//	<assets>/ionicons/icons.json       {"icons": [{"icons": ["ios-add", "md-add"]}]}
//	<assets>/elementor/icons.json      {"<name>": {"label"}}
//
// [Build] merges them into a single list sorted by key. Each [Entry]
// carries one style template per style and the encoded reference a picker
// stores when that style is chosen, so the output can be fed directly to
// [github.com/goosestudio/acficons/pkg/resolver.Resolver.Resolve].
//
// Missing metadata files are skipped so that sites bundling only some
// libraries still get a catalog.
package catalog
