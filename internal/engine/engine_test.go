package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/complyscan/complyscan/internal/detectors"
	"github.com/complyscan/complyscan/internal/registry"
	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, body := range files {
		full := filepath.Join(root, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func testRegistry(t *testing.T, defs []registry.CheckDefinition) *registry.Registry {
	t.Helper()
	reg, err := registry.New(types.TaxonomySecurity, defs)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg
}

func staticCheck(id string, cat types.Category, out detectors.Outcome) registry.CheckDefinition {
	return registry.CheckDefinition{
		ID: id, Category: cat, Name: "check " + id, Description: "test check",
		Severity: types.SevHigh, Automated: true,
		Run: func(*scanner.Result) detectors.Outcome { return out },
	}
}

func TestNew_ValidatesConfig(t *testing.T) {
	reg := testRegistry(t, nil)
	cases := []struct {
		name string
		cfg  Config
	}{
		{"missing root", Config{}},
		{"negative max files", Config{Root: "/tmp", MaxFiles: -1}},
		{"negative timeout", Config{Root: "/tmp", Timeout: -time.Second}},
	}
	for _, tc := range cases {
		if _, err := New(tc.cfg, reg); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
	if _, err := New(Config{Root: "/tmp"}, nil); err == nil {
		t.Fatal("nil registry: expected error")
	}
}

func TestAudit_Deterministic(t *testing.T) {
	root := writeTree(t, map[string]string{"app.js": "const x = 1\n"})
	defs := []registry.CheckDefinition{
		staticCheck("A01-001", types.CatBrokenAccessControl, detectors.Outcome{Status: types.StatusFail, Findings: []string{"f1"}}),
		staticCheck("A02-001", types.CatCryptoFailures, detectors.Outcome{Status: types.StatusPass}),
		staticCheck("A03-001", types.CatInjection, detectors.Outcome{Status: types.StatusWarning, Findings: []string{"f2"}}),
	}
	aud, err := New(Config{Root: root}, testRegistry(t, defs))
	if err != nil {
		t.Fatal(err)
	}

	first, err := aud.Audit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := aud.Audit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Checks) != 3 || len(second.Checks) != 3 {
		t.Fatalf("expected 3 checks, got %d and %d", len(first.Checks), len(second.Checks))
	}
	for i := range first.Checks {
		if first.Checks[i].ID != second.Checks[i].ID || first.Checks[i].Status != second.Checks[i].Status {
			t.Fatalf("run results diverge at %d: %+v vs %+v", i, first.Checks[i], second.Checks[i])
		}
	}
	// Catalog order survives concurrent evaluation.
	if first.Checks[0].ID != "A01-001" || first.Checks[2].ID != "A03-001" {
		t.Fatalf("catalog order lost: %s, %s", first.Checks[0].ID, first.Checks[2].ID)
	}
	if first.ScanDigest == "" || first.ScanDigest != second.ScanDigest {
		t.Fatalf("digest not stable: %q vs %q", first.ScanDigest, second.ScanDigest)
	}
}

func TestAudit_SkipAllCategories(t *testing.T) {
	root := writeTree(t, map[string]string{"app.js": "x\n"})
	defs := []registry.CheckDefinition{
		staticCheck("A01-001", types.CatBrokenAccessControl, detectors.Outcome{Status: types.StatusFail}),
	}
	aud, err := New(Config{Root: root, SkipCategories: []types.Category{types.CatBrokenAccessControl}}, testRegistry(t, defs))
	if err != nil {
		t.Fatal(err)
	}
	rep, err := aud.Audit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Checks) != 0 {
		t.Fatalf("expected 0 checks, got %d", len(rep.Checks))
	}
	if rep.Summary.ComplianceScore != 100 {
		t.Fatalf("empty audit score = %d, want 100", rep.Summary.ComplianceScore)
	}
	if rep.OverallStatus != types.Compliant {
		t.Fatalf("empty audit status = %s, want compliant", rep.OverallStatus)
	}
	if _, ok := rep.CategoryResults[types.CatBrokenAccessControl]; ok {
		t.Fatal("skipped category must not appear in results")
	}
}

func TestAudit_TimeoutForcesFail(t *testing.T) {
	root := writeTree(t, map[string]string{"app.js": "x\n"})
	slow := registry.CheckDefinition{
		ID: "A01-001", Category: types.CatBrokenAccessControl,
		Name: "slow check", Description: "never finishes in time",
		Severity: types.SevLow, Automated: true,
		Run: func(*scanner.Result) detectors.Outcome {
			time.Sleep(2 * time.Second)
			return detectors.Outcome{Status: types.StatusPass}
		},
	}
	aud, err := New(Config{Root: root, Timeout: 50 * time.Millisecond}, testRegistry(t, []registry.CheckDefinition{slow}))
	if err != nil {
		t.Fatal(err)
	}
	rep, err := aud.Audit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got := rep.Checks[0]
	if got.Status != types.StatusFail {
		t.Fatalf("timed-out check status = %s, want fail", got.Status)
	}
	if len(got.Findings) != 1 || got.Findings[0] != "check exceeded time budget" {
		t.Fatalf("unexpected findings: %v", got.Findings)
	}
}

func TestAudit_PanicBecomesFailingResult(t *testing.T) {
	root := writeTree(t, map[string]string{"app.js": "x\n"})
	defs := []registry.CheckDefinition{
		{
			ID: "A01-001", Category: types.CatBrokenAccessControl,
			Name: "panics", Description: "detector bug",
			Severity: types.SevLow, Automated: true,
			Run: func(*scanner.Result) detectors.Outcome { panic("boom") },
		},
		staticCheck("A02-001", types.CatCryptoFailures, detectors.Outcome{Status: types.StatusPass}),
	}
	aud, err := New(Config{Root: root}, testRegistry(t, defs))
	if err != nil {
		t.Fatal(err)
	}
	rep, err := aud.Audit(context.Background())
	if err != nil {
		t.Fatalf("audit must survive a panicking check: %v", err)
	}
	if rep.Checks[0].Status != types.StatusFail {
		t.Fatalf("panicking check status = %s, want fail", rep.Checks[0].Status)
	}
	if rep.Checks[1].Status != types.StatusPass {
		t.Fatalf("sibling check status = %s, want pass", rep.Checks[1].Status)
	}
}

func TestAudit_NotApplicableCarriesNoFindings(t *testing.T) {
	root := writeTree(t, map[string]string{"app.js": "x\n"})
	defs := []registry.CheckDefinition{
		staticCheck("A01-001", types.CatBrokenAccessControl, detectors.Outcome{
			Status:   types.StatusNotApplicable,
			Findings: []string{"should be dropped"},
		}),
	}
	aud, err := New(Config{Root: root}, testRegistry(t, defs))
	if err != nil {
		t.Fatal(err)
	}
	rep, err := aud.Audit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Checks[0].Findings) != 0 {
		t.Fatalf("not_applicable check carries findings: %v", rep.Checks[0].Findings)
	}
}

func TestAudit_WritesArtifacts(t *testing.T) {
	root := writeTree(t, map[string]string{"app.js": "x\n"})
	out := t.TempDir()
	defs := []registry.CheckDefinition{
		staticCheck("A01-001", types.CatBrokenAccessControl, detectors.Outcome{Status: types.StatusPass}),
	}
	aud, err := New(Config{Root: root, GenerateReport: true, OutputDir: out}, testRegistry(t, defs))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := aud.Audit(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"latest-security-audit.json", "latest-security-audit.md"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatalf("artifact %s missing: %v", name, err)
		}
	}
}
