// Package scanner gathers the file set an audit inspects. It walks a root
// directory once, applying default excludes, glob filters, and size/count
// caps, and returns an immutable Result shared read-only by all detectors.
package scanner
