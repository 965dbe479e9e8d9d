package core

import (
	"context"
	"testing"
)

func TestRunSecurityAudit_Smoke(t *testing.T) {
	cfg := Config{
		Root: t.TempDir(),
		// keep defaults: full catalog, no report artifacts
	}
	rep, err := RunSecurityAudit(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunSecurityAudit error: %v", err)
	}
	if rep.Taxonomy != "security" {
		t.Fatalf("taxonomy = %s, want security", rep.Taxonomy)
	}
	if rep.Summary.TotalChecks == 0 {
		t.Fatal("expected a non-empty check catalog")
	}
}

func TestRunAccessibilityAudit_Smoke(t *testing.T) {
	rep, err := RunAccessibilityAudit(context.Background(), Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("RunAccessibilityAudit error: %v", err)
	}
	if rep.Taxonomy != "accessibility" {
		t.Fatalf("taxonomy = %s, want accessibility", rep.Taxonomy)
	}
}
