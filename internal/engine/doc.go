// Package engine orchestrates a compliance audit. It scans the target tree
// once, evaluates every registered check against the shared scan, and
// assembles the final report. This package is internal; external consumers
// should use the stable facade in pkg/core.
package engine
