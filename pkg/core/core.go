package core

import (
	"context"

	"github.com/complyscan/complyscan/internal/engine"
	"github.com/complyscan/complyscan/internal/registry"
	"github.com/complyscan/complyscan/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type AuditReport = types.AuditReport
type CheckResult = types.CheckResult
type Summary = types.Summary
type Category = types.Category
type OverallStatus = types.OverallStatus

// RunSecurityAudit evaluates the OWASP Top 10 catalog against cfg.Root.
func RunSecurityAudit(ctx context.Context, cfg Config) (*AuditReport, error) {
	reg, err := registry.NewSecurity(nil)
	if err != nil {
		return nil, err
	}
	aud, err := engine.New(cfg, reg)
	if err != nil {
		return nil, err
	}
	return aud.Audit(ctx)
}

// RunAccessibilityAudit evaluates the WCAG 2.1 catalog against cfg.Root.
// cfg.Level sets the conformance floor; it defaults to AA.
func RunAccessibilityAudit(ctx context.Context, cfg Config) (*AuditReport, error) {
	reg, err := registry.NewAccessibility()
	if err != nil {
		return nil, err
	}
	aud, err := engine.New(cfg, reg)
	if err != nil {
		return nil, err
	}
	return aud.Audit(ctx)
}
