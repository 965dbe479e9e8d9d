package scanner

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

var defaultExcludeDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".next":        true,
	".nuxt":        true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"coverage":     true,
	"bin":          true,
	"obj":          true,
}

// recognizedExts are the text-based source extensions an audit inspects.
var recognizedExts = map[string]bool{
	".go": true, ".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".mjs": true, ".cjs": true, ".vue": true, ".svelte": true,
	".html": true, ".htm": true, ".ejs": true, ".hbs": true, ".pug": true,
	".css": true, ".scss": true, ".less": true,
	".json": true, ".yml": true, ".yaml": true, ".toml": true, ".ini": true,
	".py": true, ".rb": true, ".php": true, ".java": true, ".cs": true,
	".sql": true, ".sh": true, ".env": true, ".md": true, ".txt": true,
	".xml": true, ".tf": true,
}

// recognizedNames are extension-less files worth scanning.
var recognizedNames = map[string]bool{
	"dockerfile": true,
	"makefile":   true,
	"procfile":   true,
	".env":       true,
	".babelrc":   true,
	".eslintrc":  true,
}

var defaultExcludeFileSuffixes = []string{
	".min.js", ".min.css", ".map",
	".pb.go", ".gen.go",
	".snap",
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name] || strings.HasPrefix(name, ".git")
}

func isDefaultFileExcluded(lowerRel string) bool {
	for _, s := range defaultExcludeFileSuffixes {
		if strings.HasSuffix(lowerRel, s) {
			return true
		}
	}
	return strings.Contains(lowerRel, ".gen.")
}

func recognized(rel string) bool {
	base := strings.ToLower(filepath.Base(rel))
	if recognizedNames[base] {
		return true
	}
	ext := strings.ToLower(filepath.Ext(rel))
	if ext == "" {
		return false
	}
	if recognizedExts[ext] {
		return true
	}
	// dotfiles like .env.production
	return strings.HasPrefix(base, ".env")
}

// allowedByGlobs applies comma-separated include globs as a positive filter
// and exclude globs subtractively, with forward-slash semantics.
func allowedByGlobs(relPath, include, exclude string) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(include)
	excludes := parseGlobsList(exclude)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
