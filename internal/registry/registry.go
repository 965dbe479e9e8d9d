package registry

import (
	"fmt"
	"regexp"

	"github.com/complyscan/complyscan/internal/detectors"
	"github.com/complyscan/complyscan/internal/types"
)

// CheckDefinition is one immutable catalog entry: the identity and metadata
// of a check plus the detector that evaluates it.
type CheckDefinition struct {
	ID          string
	Category    types.Category
	Name        string
	Description string
	Severity    types.Severity
	Level       types.Level
	Automated   bool
	References  []string
	Run         detectors.Func
}

// Registry is an ordered, immutable check catalog for one taxonomy.
type Registry struct {
	taxonomy types.Taxonomy
	checks   []CheckDefinition
}

var idPatterns = map[types.Taxonomy]*regexp.Regexp{
	types.TaxonomySecurity:      regexp.MustCompile(`^[A-Z]\d{2}-\d{3}$`),
	types.TaxonomyAccessibility: regexp.MustCompile(`^WCAG-\d+\.\d+\.\d+$`),
}

// New validates and freezes a catalog. Duplicate or malformed ids and
// missing detectors are programmer errors and fail construction, before any
// scanning can begin.
func New(taxonomy types.Taxonomy, defs []CheckDefinition) (*Registry, error) {
	pat, ok := idPatterns[taxonomy]
	if !ok {
		return nil, fmt.Errorf("unknown taxonomy %q", taxonomy)
	}
	seen := map[string]bool{}
	for _, d := range defs {
		if !pat.MatchString(d.ID) {
			return nil, fmt.Errorf("check id %q does not match the %s id pattern", d.ID, taxonomy)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("duplicate check id %q", d.ID)
		}
		seen[d.ID] = true
		if d.Run == nil {
			return nil, fmt.Errorf("check %q has no detector", d.ID)
		}
		if taxonomy == types.TaxonomyAccessibility && d.Level == "" {
			return nil, fmt.Errorf("accessibility check %q has no WCAG level", d.ID)
		}
	}
	cp := make([]CheckDefinition, len(defs))
	copy(cp, defs)
	return &Registry{taxonomy: taxonomy, checks: cp}, nil
}

// Taxonomy returns which catalog this registry holds.
func (r *Registry) Taxonomy() types.Taxonomy { return r.taxonomy }

// Len returns the total number of checks in the catalog.
func (r *Registry) Len() int { return len(r.checks) }

// Checks returns the catalog minus skipped categories and, for the
// accessibility taxonomy, minus checks above the given level floor. The
// returned slice preserves catalog order and is safe to retain.
func (r *Registry) Checks(skip []types.Category, levelFloor types.Level) []CheckDefinition {
	skipped := map[types.Category]bool{}
	for _, c := range skip {
		skipped[c] = true
	}
	var out []CheckDefinition
	for _, d := range r.checks {
		if skipped[d.Category] {
			continue
		}
		if r.taxonomy == types.TaxonomyAccessibility && levelFloor != "" && d.Level.Rank() > levelFloor.Rank() {
			continue
		}
		out = append(out, d)
	}
	return out
}
