package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	res := Scan(Config{Root: filepath.Join(t.TempDir(), "nope")})
	if len(res.Files) != 0 || len(res.Names) != 0 {
		t.Fatalf("expected empty result for missing root, got %d files", len(res.Files))
	}
}

func TestScan_DefaultExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/app.js", "const a = 1\n")
	writeFile(t, dir, "node_modules/lib/index.js", "module.exports = {}\n")
	writeFile(t, dir, "dist/bundle.min.js", "x\n")
	res := Scan(Config{Root: dir, DefaultExcludes: true})
	if len(res.Files) != 1 || res.Files[0].Path != "src/app.js" {
		t.Fatalf("expected only src/app.js, got %#v", res.Files)
	}
}

func TestScan_UnrecognizedExtensionsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "logo.png", "\x89PNG")
	writeFile(t, dir, "app.js", "ok\n")
	res := Scan(Config{Root: dir})
	if len(res.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(res.Files))
	}
}

func TestScan_MaxFilesCapRecordsNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "a\n")
	writeFile(t, dir, "b.js", "b\n")
	writeFile(t, dir, "c.js", "c\n")
	res := Scan(Config{Root: dir, MaxFiles: 2})
	if len(res.Files) != 2 {
		t.Fatalf("expected 2 files under cap, got %d", len(res.Files))
	}
	if !res.Truncated {
		t.Fatalf("expected Truncated when cap hit")
	}
	if len(res.Names) != 3 {
		t.Fatalf("expected all 3 names recorded, got %d", len(res.Names))
	}
}

func TestScan_Globs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/a.js", "a\n")
	writeFile(t, dir, "src/a.py", "a\n")
	writeFile(t, dir, "test/b.js", "b\n")

	res := Scan(Config{Root: dir, IncludeGlobs: "**/*.js"})
	for _, f := range res.Files {
		if !strings.HasSuffix(f.Path, ".js") {
			t.Fatalf("include glob leaked %s", f.Path)
		}
	}
	res = Scan(Config{Root: dir, ExcludeGlobs: "test/**"})
	for _, f := range res.Files {
		if strings.HasPrefix(f.Path, "test/") {
			t.Fatalf("exclude glob leaked %s", f.Path)
		}
	}
}

func TestScan_SizeSkippedStillNamed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package-lock.json", strings.Repeat("x", 100))
	res := Scan(Config{Root: dir, MaxBytes: 10})
	if len(res.Files) != 0 {
		t.Fatalf("oversized file should not be collected")
	}
	if !res.HasName("package-lock.json") {
		t.Fatalf("oversized file should still appear in the name inventory")
	}
}

func TestDigest_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "alpha\n")
	writeFile(t, dir, "b.js", "beta\n")
	d1 := Scan(Config{Root: dir}).Digest()
	d2 := Scan(Config{Root: dir}).Digest()
	if d1 != d2 {
		t.Fatalf("digest not stable: %s vs %s", d1, d2)
	}
	writeFile(t, dir, "a.js", "changed\n")
	if d3 := Scan(Config{Root: dir}).Digest(); d3 == d1 {
		t.Fatalf("digest should change with content")
	}
}

func TestQueryHelpers(t *testing.T) {
	res := &Result{Files: []File{
		{Path: "routes/user.js", Content: "requireAuth()"},
		{Path: "views/home.html", Content: "<img src=x>"},
		{Path: "lib/util.py", Content: "pass"},
	}}
	if n := len(res.Markup()); n != 1 {
		t.Fatalf("markup: expected 1, got %d", n)
	}
	if n := len(res.Code()); n != 2 {
		t.Fatalf("code: expected 2, got %d", n)
	}
	if n := len(res.WithPathContains("routes")); n != 1 {
		t.Fatalf("path contains: expected 1, got %d", n)
	}
	if !res.AnyMatch(regexp.MustCompile(`requireAuth`)) {
		t.Fatalf("AnyMatch should find requireAuth")
	}
	if CountMatching(res.Code(), regexp.MustCompile(`requireAuth`)) != 1 {
		t.Fatalf("CountMatching mismatch")
	}
}
