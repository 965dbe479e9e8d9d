package detectors

import (
	"fmt"
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reClickableDiv    = regexp.MustCompile(`(?i)<(div|span)\b[^>]*on[Cc]lick`)
	reKeyboardEscape  = regexp.MustCompile(`(?i)(tabindex|role\s*=|onKey(Down|Up|Press))`)
	rePositiveTabidx  = regexp.MustCompile(`(?i)tabindex\s*=\s*["']?[1-9]`)
	reSkipLink        = regexp.MustCompile(`(?i)(skip[-_ ]?(to[-_ ]?)?(main|content|nav)|#main-content|class=["'][^"']*skip-link)`)
	rePageTitle       = regexp.MustCompile(`(?i)(<title>|document\.title|<Head>|useTitle|<svelte:head>|page_title)`)
	reAutoplayMedia   = regexp.MustCompile(`(?i)<(video|audio)\b[^>]*autoplay`)
	reMediaControls   = regexp.MustCompile(`(?i)\bcontrols\b`)
	reVagueLinkText   = regexp.MustCompile(`(?i)<a\b[^>]*>\s*(click here|here|read more|learn more|more)\s*<`)
)

// ClickableNonInteractive flags click handlers on divs/spans with no
// keyboard affordance, plus positive tabindex values.
func ClickableNonInteractive(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	var findings []string
	for _, f := range markup {
		for _, m := range reClickableDiv.FindAllStringSubmatch(f.Content, -1) {
			if !reKeyboardEscape.MatchString(m[0]) {
				findings = append(findings, fmt.Sprintf("%s: clickable %s without keyboard support", f.Path, m[1]))
				break
			}
		}
		if rePositiveTabidx.MatchString(f.Content) {
			findings = append(findings, f.Path+": positive tabindex overrides natural focus order")
		}
	}
	if len(findings) == 0 {
		return Outcome{Status: types.StatusPass, Findings: []string{"no keyboard traps detected in markup"}}
	}
	return Outcome{
		Status:          types.StatusFail,
		Findings:        findings,
		Recommendations: []string{"Use buttons/links for interaction, or add role and key handlers", "Avoid tabindex values above 0"},
	}
}

// SkipLinks checks for a skip-to-content mechanism.
func SkipLinks(scan *scanner.Result) Outcome {
	if len(scan.Markup()) == 0 {
		return notApplicable()
	}
	return presence(scan, reSkipLink,
		"skip-to-content link present",
		"no skip-to-content link found",
		types.StatusWarning,
		[]string{"Add a skip link targeting the main content region"})
}

// PageTitles checks that pages set a document title.
func PageTitles(scan *scanner.Result) Outcome {
	if len(scan.Markup()) == 0 {
		return notApplicable()
	}
	return presence(scan, rePageTitle,
		"page titles are set",
		"no page title mechanism found",
		types.StatusFail,
		[]string{"Give every page a unique, descriptive title"})
}

// AutoplayMedia flags media that starts automatically without controls.
func AutoplayMedia(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	var findings []string
	for _, f := range markup {
		for _, tag := range reAutoplayMedia.FindAllString(f.Content, -1) {
			if !reMediaControls.MatchString(tag) {
				findings = append(findings, f.Path+": autoplaying media without controls")
			}
		}
	}
	if len(findings) == 0 {
		return Outcome{Status: types.StatusPass, Findings: []string{"no uncontrolled autoplay detected"}}
	}
	return Outcome{
		Status:          types.StatusWarning,
		Findings:        findings,
		Recommendations: []string{"Expose controls and a pause mechanism for any autoplaying media"},
	}
}

// LinkPurpose flags anchor text that gives no context on its own.
func LinkPurpose(scan *scanner.Result) Outcome {
	return negative(scan.Markup(), []pattern{
		{reVagueLinkText, `vague link text ("click here"/"read more")`},
	}, types.StatusWarning, []string{
		"Write link text that describes the destination out of context",
	})
}
