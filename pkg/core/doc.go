// Package core provides a small, stable facade over complyscan's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so CI plugins and third-party tools can depend on a stable import
// path without exposing internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: "."}
//	rep, err := core.RunSecurityAudit(context.Background(), cfg)
//	if err != nil { /* handle */ }
//	fmt.Println(rep.Summary.ComplianceScore)
package core
