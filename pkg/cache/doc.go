// Package cache implements the on-disk cache of extracted icon SVG files.
//
// Entries live at a fixed, stable location that templates may reference
// directly:
//
//	<root>/<library>/<iconID>.svg
//
// Existence is the only cache-hit signal: there is no checksum, TTL or
// invalidation. An entry stays valid until it is removed by hand (or with
// [Store.Clear]), so upgrading the bundled sprites requires clearing the
// cache.
//
// Writes go through [Store.WriteAtomic], which writes a uniquely named
// temporary file in the same directory and renames it into place. Readers
// therefore never observe a partially written entry, even when two processes
// extract the same icon at the same time. Within one process [Store.Lock]
// serializes the check-then-write sequence per entry.
//
// All file access goes through an [afero.Fs], so tests can run on an
// in-memory filesystem.
package cache
