// Package pkg holds the acficons libraries.
//
// Data flows from a stored reference to template output:
//
//	"font-awesome:fa-home:fas"
//	         ↓
//	    [icon] parse, CSS class, sprite style and symbol id
//	         ↓
//	    [resolver] dispatch on the output format
//	         ↓
//	    [sprite] slice the symbol out of the bundled sprite
//	         ↓
//	    [cache] standalone SVG file under the cache root
//
// Supporting packages:
//
//   - [catalog]: pickable icon list built from the library metadata
//   - [preview]: PNG rendering of extracted icons
//   - [config]: TOML file and ACFICONS_* environment settings
//   - [errors]: coded errors shared by all packages
//   - [observability]: resolver and cache hooks
//   - [buildinfo]: version information
package pkg
