// Package sprite extracts single icons from bundled SVG sprite documents.
//
// A sprite document bundles many icons as <symbol> elements addressed by
// id. [Extractor.Extract] finds one symbol, turns it into a standalone <svg>
// document and stores it in the sprite cache:
//
//	<symbol id="home" viewBox="0 0 576 512"><path d="..."/></symbol>
//
// becomes
//
//	<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 576 512"><path d="..."></path></svg>
//
// Sprite documents are parsed with golang.org/x/net/html, whose foreign
// content rules keep SVG attribute casing (viewBox, preserveAspectRatio) and
// namespaced attributes (xlink:href) intact.
//
// Once a cache file exists it is returned as-is; the sprite document is not
// loaded again.
package sprite
