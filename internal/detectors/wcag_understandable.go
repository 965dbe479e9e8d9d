package detectors

import (
	"fmt"
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reHTMLTag       = regexp.MustCompile(`(?i)<html\b[^>]*>`)
	reLangAttr      = regexp.MustCompile(`(?i)\blang\s*=`)
	reFormControl   = regexp.MustCompile(`(?i)<(input|select|textarea)\b[^>]*>`)
	reHiddenControl = regexp.MustCompile(`(?i)type\s*=\s*["']?(hidden|submit|button)`)
	reLabelled      = regexp.MustCompile(`(?i)(aria-label|aria-labelledby|\bid\s*=)`)
	reLabelFor      = regexp.MustCompile(`(?i)<label\b[^>]*\bfor\s*=`)
	reOnInputSubmit = regexp.MustCompile(`(?i)on(change|input)\s*=\s*["'][^"']*submit`)
)

// DocumentLanguage verifies html elements declare a lang attribute.
func DocumentLanguage(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	total, missing := 0, 0
	example := ""
	for _, f := range markup {
		for _, tag := range reHTMLTag.FindAllString(f.Content, -1) {
			total++
			if !reLangAttr.MatchString(tag) {
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
	finding := fmt.Sprintf("%d/%d html elements missing lang", missing, total)
	if missing == 0 {
		return Outcome{Status: types.StatusPass, Findings: []string{finding}}
	}
	return Outcome{
		Status:          types.StatusFail,
		Findings:        []string{finding, "first offending file: " + example},
		Recommendations: []string{`Declare the page language, e.g. <html lang="en">`},
	}
}

// FormLabels counts visible form controls without a label association.
func FormLabels(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	total, unlabelled := 0, 0
	example := ""
	for _, f := range markup {
		hasLabelFor := reLabelFor.MatchString(f.Content)
		for _, tag := range reFormControl.FindAllString(f.Content, -1) {
			if reHiddenControl.MatchString(tag) {
				continue
			}
			total++
			if !reLabelled.MatchString(tag) && !hasLabelFor {
				unlabelled++
				if example == "" {
					example = f.Path
				}
			}
		}
	}
	if total == 0 {
		return notApplicable()
	}
	finding := fmt.Sprintf("%d/%d form controls lack a label association", unlabelled, total)
	if unlabelled == 0 {
		return Outcome{Status: types.StatusPass, Findings: []string{finding}}
	}
	return Outcome{
		Status:          types.StatusFail,
		Findings:        []string{finding, "first offending file: " + example},
		Recommendations: []string{"Associate every control with a label via for/id or aria-label"},
	}
}

// OnInputContextChange flags forms submitted by change events rather than
// explicit activation.
func OnInputContextChange(scan *scanner.Result) Outcome {
	return negative(scan.Markup(), []pattern{
		{reOnInputSubmit, "form submitted on input/change"},
	}, types.StatusWarning, []string{
		"Trigger submission from an explicit button, not a change event",
	})
}
