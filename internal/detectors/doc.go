// Package detectors holds the heuristic check implementations for both
// audit taxonomies. Each detector is a pure, total function over the shared
// scan result: it infers posture from structural signals in source text and
// degrades to failing outcomes with explanatory findings instead of
// returning errors.
package detectors
