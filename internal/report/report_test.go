package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/complyscan/complyscan/internal/types"
)

func sampleReport() *types.AuditReport {
	return &types.AuditReport{
		Taxonomy:        types.TaxonomySecurity,
		Timestamp:       time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		ApplicationName: "shop-backend",
		RootDir:         "/tmp/shop",
		Checks: []types.CheckResult{
			{
				ID: "A01-001", Category: types.CatBrokenAccessControl,
				Name: "Authentication middleware coverage", Description: "Route handlers should sit behind auth middleware.",
				Severity: types.SevCritical, Automated: true,
				References: []string{"CWE-306"},
				Status:     types.StatusFail,
				Findings:   []string{"2/10 files with route handlers reference auth middleware"},
				Recommendations: []string{
					"Apply authentication middleware to every route group",
				},
			},
			{
				ID: "A02-001", Category: types.CatCryptoFailures,
				Name: "Weak hash algorithms", Description: "MD5 and SHA-1 should not protect anything sensitive.",
				Severity: types.SevHigh, Automated: true,
				References:      []string{"CWE-327"},
				Status:          types.StatusPass,
				Findings:        []string{},
				Recommendations: []string{},
			},
		},
		CategoryResults: map[types.Category]types.CategoryResult{
			types.CatBrokenAccessControl: {
				TotalChecks: 1, Failed: 1, Status: types.StatusFail,
				Priority: types.SevCritical, ComplianceScore: 0,
			},
			types.CatCryptoFailures: {
				TotalChecks: 1, Passed: 1, Status: types.StatusPass,
				Priority: types.SevHigh, ComplianceScore: 100,
			},
		},
		Summary: types.Summary{
			TotalChecks: 2, Passed: 1, Failed: 1,
			ComplianceScore: 50, CriticalIssues: 1,
		},
		OverallStatus: types.NonCompliant,
		NextSteps: []string{
			"URGENT: Apply authentication middleware to every route group",
			"Re-run the audit after each fix and track the compliance score in CI.",
		},
		FilesScanned: 10,
		ScanDigest:   "ab12cd34ef56ab78",
		Repo:         types.RepoMetadata{Branch: "main", Commit: "deadbeef"},
	}
}

func TestWriteMarkdown_SectionOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()
	sections := []string{
		"## Executive Summary",
		"## Category Results",
		"## Detailed Findings",
		"## Next Steps",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx < 0 {
			t.Fatalf("missing section %q; got:\n%s", s, out)
		}
		if idx < last {
			t.Fatalf("section %q out of order", s)
		}
		last = idx
	}
}

func TestWriteMarkdown_CarriesAllData(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"shop-backend",
		"A01-001",
		"CWE-306",
		"2/10 files with route handlers reference auth middleware",
		"Apply authentication middleware to every route group",
		"**Compliance score:** 50%",
		"| Critical issues | 1 |",
		"| Files scanned | 10 |",
		"URGENT:",
		"main @ deadbeef",
		"ab12cd34ef56ab78",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q; got:\n%s", want, out)
		}
	}
}

func TestWriteJSON_FieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"taxonomy", "timestamp", "applicationName", "rootDir",
		"checks", "categoryResults", "summary", "overallStatus",
		"nextSteps", "filesScanned", "scanDigest",
	} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("expected top-level key %q; got keys %v", key, doc)
		}
	}
	sum, ok := doc["summary"].(map[string]any)
	if !ok {
		t.Fatalf("summary not an object")
	}
	if sum["complianceScore"] != float64(50) {
		t.Fatalf("complianceScore = %v, want 50", sum["complianceScore"])
	}
	if doc["overallStatus"] != "non_compliant" {
		t.Fatalf("overallStatus = %v", doc["overallStatus"])
	}
}

func TestSave_WritesBothArtifacts(t *testing.T) {
	dir := t.TempDir()
	jsonPath, mdPath, err := Save(sampleReport(), dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(jsonPath) != "latest-security-audit.json" {
		t.Fatalf("unexpected json name: %s", jsonPath)
	}
	if filepath.Base(mdPath) != "latest-security-audit.md" {
		t.Fatalf("unexpected md name: %s", mdPath)
	}
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("json artifact invalid: %v", err)
	}
	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read md: %v", err)
	}
	if !strings.Contains(string(md), "## Executive Summary") {
		t.Fatalf("md artifact missing summary section")
	}
}

func TestPrintSummary_NoColor(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, sampleReport(), PrintOptions{NoColor: true, Duration: 800 * time.Millisecond})
	out := buf.String()
	if !strings.Contains(out, "OWASP Top 10 Security Audit") {
		t.Fatalf("expected title; got: %q", out)
	}
	if !strings.Contains(out, "A01-001") {
		t.Fatalf("expected failing check line; got: %q", out)
	}
	if !strings.Contains(out, "Compliance score: 50%") {
		t.Fatalf("expected score footer; got: %q", out)
	}
	if !strings.Contains(out, "Audit duration: 0.80s") {
		t.Fatalf("expected duration footer; got: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("NoColor output contains ANSI escapes: %q", out)
	}
}
