package scanner

import (
	"path/filepath"
	"regexp"
	"strings"
)

// WithSuffix returns the scanned files whose path ends in any given suffix.
// Matching is case-insensitive.
func (r *Result) WithSuffix(suffixes ...string) []File {
	var out []File
	for _, f := range r.Files {
		lower := strings.ToLower(f.Path)
		for _, s := range suffixes {
			if strings.HasSuffix(lower, s) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// WithPathContains returns the scanned files whose path contains any of the
// given substrings (case-insensitive). Used to approximate roles such as
// "route handlers" or "views".
func (r *Result) WithPathContains(subs ...string) []File {
	var out []File
	for _, f := range r.Files {
		lower := strings.ToLower(f.Path)
		for _, s := range subs {
			if strings.Contains(lower, s) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// Markup returns scanned files likely to carry HTML-ish markup.
func (r *Result) Markup() []File {
	return r.WithSuffix(".html", ".htm", ".jsx", ".tsx", ".vue", ".svelte", ".ejs", ".hbs", ".pug")
}

// Code returns scanned application-code files (scripts and compiled-language
// sources, excluding markup, styles, and data files).
func (r *Result) Code() []File {
	return r.WithSuffix(".go", ".js", ".mjs", ".cjs", ".ts", ".jsx", ".tsx", ".py", ".rb", ".php", ".java", ".cs")
}

// HasName reports whether any recognized file in the tree has the given base
// name, whether or not its content was collected.
func (r *Result) HasName(base string) bool {
	for _, n := range r.Names {
		if strings.EqualFold(filepath.Base(n), base) {
			return true
		}
	}
	return false
}

// Named returns the scanned file with the given base name, if its content
// was collected.
func (r *Result) Named(base string) (File, bool) {
	for _, f := range r.Files {
		if strings.EqualFold(filepath.Base(f.Path), base) {
			return f, true
		}
	}
	return File{}, false
}

// CountMatching returns how many of the given files match re.
func CountMatching(files []File, re *regexp.Regexp) int {
	n := 0
	for _, f := range files {
		if re.MatchString(f.Content) {
			n++
		}
	}
	return n
}

// AnyMatch reports whether re matches any scanned file.
func (r *Result) AnyMatch(re *regexp.Regexp) bool {
	for _, f := range r.Files {
		if re.MatchString(f.Content) {
			return true
		}
	}
	return false
}
