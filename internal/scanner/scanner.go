package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
)

// Config controls which files a scan collects.
type Config struct {
	Root            string
	MaxFiles        int
	MaxBytes        int64
	IncludeGlobs    string
	ExcludeGlobs    string
	DefaultExcludes bool
}

// File is one scanned source file with its full content.
type File struct {
	Path    string
	Content string
}

// Result is the immutable outcome of one scan. It is shared read-only by
// every detector in an audit.
type Result struct {
	Root  string
	Files []File
	// Names holds the relative path of every recognized file encountered,
	// including files whose content was skipped for size or the file cap.
	// Presence checks consult this inventory.
	Names     []string
	Truncated bool
}

const (
	defaultMaxFiles = 500
	defaultMaxBytes = 1 << 20
)

// Scan walks cfg.Root and collects eligible text files up to cfg.MaxFiles.
// A missing or empty root yields an empty Result, never an error: downstream
// checks report not_applicable or zero findings instead of aborting the audit.
func Scan(cfg Config) *Result {
	if cfg.MaxFiles <= 0 {
		cfg.MaxFiles = defaultMaxFiles
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	res := &Result{Root: cfg.Root}
	seen := map[string]bool{}

	_ = filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(cfg.Root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if seen[rel] {
			return nil
		}
		if !recognized(rel) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		if !allowedByGlobs(rel, cfg.IncludeGlobs, cfg.ExcludeGlobs) {
			return nil
		}
		seen[rel] = true
		res.Names = append(res.Names, rel)
		if len(res.Files) >= cfg.MaxFiles {
			res.Truncated = true
			return nil
		}
		if info, infoErr := d.Info(); infoErr == nil && info.Size() > cfg.MaxBytes {
			return nil
		}
		b, readErr := os.ReadFile(p)
		if readErr != nil {
			return nil
		}
		if looksBinary(b) {
			return nil
		}
		res.Files = append(res.Files, File{Path: rel, Content: string(b)})
		return nil
	})
	sort.Strings(res.Names)
	sort.Slice(res.Files, func(i, j int) bool { return res.Files[i].Path < res.Files[j].Path })
	return res
}

// Digest returns a stable fingerprint of the scanned content. Two scans of
// an unchanged tree produce the same digest.
func (r *Result) Digest() string {
	h := xxhash.New()
	for _, f := range r.Files {
		_, _ = h.WriteString(f.Path)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(f.Content)
		_, _ = h.WriteString("\x00")
	}
	sum := h.Sum64()
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := len(b)
	if n > sniff {
		n = sniff
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
