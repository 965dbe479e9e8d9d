package detectors

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reIDAttr    = regexp.MustCompile(`(?i)\bid\s*=\s*["']([^"']+)["']`)
	reRoleAttr  = regexp.MustCompile(`(?i)\brole\s*=\s*["']([^"']+)["']`)
	reLiveRegion = regexp.MustCompile(`(?i)(aria-live|role\s*=\s*["'](alert|status)["'])`)
	reDynamicUI  = regexp.MustCompile(`(?i)(setState|useState|toast|notification|flash|innerHTML\s*=)`)
)

// knownRoles is the set of valid ARIA role values detectors accept.
var knownRoles = map[string]bool{
	"alert": true, "alertdialog": true, "application": true, "article": true,
	"banner": true, "button": true, "checkbox": true, "columnheader": true,
	"combobox": true, "complementary": true, "contentinfo": true, "dialog": true,
	"directory": true, "document": true, "feed": true, "figure": true,
	"form": true, "grid": true, "gridcell": true, "group": true, "heading": true,
	"img": true, "link": true, "list": true, "listbox": true, "listitem": true,
	"log": true, "main": true, "marquee": true, "math": true, "menu": true,
	"menubar": true, "menuitem": true, "menuitemcheckbox": true,
	"menuitemradio": true, "navigation": true, "none": true, "note": true,
	"option": true, "presentation": true, "progressbar": true, "radio": true,
	"radiogroup": true, "region": true, "row": true, "rowgroup": true,
	"rowheader": true, "scrollbar": true, "search": true, "searchbox": true,
	"separator": true, "slider": true, "spinbutton": true, "status": true,
	"switch": true, "tab": true, "table": true, "tablist": true, "tabpanel": true,
	"term": true, "textbox": true, "timer": true, "toolbar": true,
	"tooltip": true, "tree": true, "treegrid": true, "treeitem": true,
}

// DuplicateIDs flags id values repeated within a single document.
func DuplicateIDs(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	var findings []string
	for _, f := range markup {
		seen := map[string]int{}
		for _, m := range reIDAttr.FindAllStringSubmatch(f.Content, -1) {
			seen[m[1]]++
		}
		for id, n := range seen {
			if n > 1 && !looksTemplated(id) {
				findings = append(findings, fmt.Sprintf("%s: id %q appears %d times", f.Path, id, n))
			}
		}
	}
	if len(findings) == 0 {
		return Outcome{Status: types.StatusPass, Findings: []string{"no duplicate ids detected"}}
	}
	return Outcome{
		Status:          types.StatusFail,
		Findings:        findings,
		Recommendations: []string{"Keep element ids unique within a document"},
	}
}

// ARIARoleValidity flags role attributes with unknown values.
func ARIARoleValidity(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	var findings []string
	sawRole := false
	for _, f := range markup {
		for _, m := range reRoleAttr.FindAllStringSubmatch(f.Content, -1) {
			sawRole = true
			if looksTemplated(m[1]) {
				continue
			}
			// role may carry a space-separated fallback list
			for _, role := range strings.Fields(m[1]) {
				if !knownRoles[strings.ToLower(role)] {
					findings = append(findings, fmt.Sprintf("%s: unknown ARIA role %q", f.Path, role))
				}
			}
		}
	}
	if !sawRole {
		return notApplicable()
	}
	if len(findings) == 0 {
		return Outcome{Status: types.StatusPass, Findings: []string{"all ARIA roles are valid"}}
	}
	return Outcome{
		Status:          types.StatusFail,
		Findings:        findings,
		Recommendations: []string{"Use only valid ARIA role values"},
	}
}

// StatusMessages checks that dynamically updating interfaces expose live
// regions for assistive technology.
func StatusMessages(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	if !scan.AnyMatch(reDynamicUI) {
		return notApplicable()
	}
	return presence(scan, reLiveRegion,
		"live regions present for dynamic updates",
		"dynamic updates present but no aria-live/alert region found",
		types.StatusWarning,
		[]string{"Announce status changes with aria-live or role=\"status\""})
}

// looksTemplated reports whether an attribute value is generated by a
// template expression rather than a literal.
func looksTemplated(v string) bool {
	for _, marker := range []string{"{", "<%", "#{"} {
		if strings.Contains(v, marker) {
			return true
		}
	}
	return false
}
