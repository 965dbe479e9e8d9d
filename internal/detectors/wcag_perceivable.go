package detectors

import (
	"fmt"
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reImgTag       = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	reAltAttr      = regexp.MustCompile(`(?i)\balt\s*=`)
	reHeadingTag   = regexp.MustCompile(`(?i)<h([1-6])\b`)
	reInlineColor  = regexp.MustCompile(`(?i)style\s*=\s*["'][^"']*color\s*:`)
	reZoomBlocking = regexp.MustCompile(`(?i)(user-scalable\s*=\s*no|maximum-scale\s*=\s*1(\.0)?\b)`)
)

// ImgAltText counts img elements lacking an alt attribute.
func ImgAltText(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	total, missing := 0, 0
	example := ""
	for _, f := range markup {
		for _, tag := range reImgTag.FindAllString(f.Content, -1) {
			total++
			if !reAltAttr.MatchString(tag) {
				missing++
				if example == "" {
					example = f.Path
				}
			}
		}
	}
	if total == 0 {
		return notApplicable()
	}
	finding := fmt.Sprintf("%d/%d img elements missing alt text", missing, total)
	if missing == 0 {
		return Outcome{Status: types.StatusPass, Findings: []string{finding}}
	}
	return Outcome{
		Status:          types.StatusFail,
		Findings:        []string{finding, "first offending file: " + example},
		Recommendations: []string{"Give every informative image a descriptive alt; use alt=\"\" for decoration"},
	}
}

// HeadingStructure flags skipped heading levels within a file.
func HeadingStructure(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	var violations []string
	sawHeadings := false
	for _, f := range markup {
		prev := 0
		for _, m := range reHeadingTag.FindAllStringSubmatch(f.Content, -1) {
			sawHeadings = true
			level := int(m[1][0] - '0')
			if prev > 0 && level > prev+1 {
				violations = append(violations, fmt.Sprintf("%s: h%d follows h%d", f.Path, level, prev))
			}
			prev = level
		}
	}
	if !sawHeadings {
		return notApplicable()
	}
	if len(violations) == 0 {
		return Outcome{Status: types.StatusPass, Findings: []string{"heading levels are sequential"}}
	}
	return Outcome{
		Status:          types.StatusWarning,
		Findings:        violations,
		Recommendations: []string{"Keep heading levels sequential; do not skip levels for styling"},
	}
}

// ColorContrast cannot be proven from source; it surfaces inline color
// styling as material for a manual contrast review.
func ColorContrast(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	styled := scanner.CountMatching(markup, reInlineColor)
	return Outcome{
		Status:          types.StatusWarning,
		Findings:        []string{fmt.Sprintf("%d files use inline color styling; contrast requires manual verification", styled)},
		Recommendations: []string{"Verify text contrast is at least 4.5:1 (3:1 for large text)"},
	}
}

// ViewportZoom flags viewport meta tags that block pinch zoom.
func ViewportZoom(scan *scanner.Result) Outcome {
	return negative(scan.Markup(), []pattern{
		{reZoomBlocking, "viewport blocks user zoom"},
	}, types.StatusFail, []string{
		"Remove user-scalable=no and maximum-scale caps from the viewport meta tag",
	})
}
