// Package registry holds the fixed check catalogs for both audit
// taxonomies. Catalogs are validated and frozen at construction and shared
// read-only; the evaluation engine receives a registry as a value instead of
// reading ambient global state.
package registry
