package detectors

import (
	"fmt"
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

// Outcome is the raw result a detector produces for one check.
type Outcome struct {
	Status          types.Status
	Findings        []string
	Recommendations []string
}

// Func is a single detector: a pure function over the shared scan result.
// Detectors never return an error; failures of external collaborators are
// reported as failing outcomes with explanatory findings.
type Func func(scan *scanner.Result) Outcome

func notApplicable(recs ...string) Outcome {
	return Outcome{Status: types.StatusNotApplicable, Recommendations: recs}
}

// coverage scores what fraction of the given files match re. Below failBelow
// the check fails, below warnBelow it warns, otherwise it passes. Zero
// relevant files is structurally inapplicable.
func coverage(files []scanner.File, re *regexp.Regexp, subject string, failBelow, warnBelow float64, recs []string) Outcome {
	if len(files) == 0 {
		return notApplicable()
	}
	matched := scanner.CountMatching(files, re)
	ratio := float64(matched) / float64(len(files))
	finding := fmt.Sprintf("%d/%d files %s", matched, len(files), subject)
	status := types.StatusPass
	if ratio < failBelow {
		status = types.StatusFail
	} else if ratio < warnBelow {
		status = types.StatusWarning
	}
	out := Outcome{Status: status, Findings: []string{finding}}
	if status != types.StatusPass {
		out.Recommendations = recs
	}
	return out
}

// presence is a boolean check: a single match anywhere passes, absence
// yields missStatus. No partial credit.
func presence(scan *scanner.Result, re *regexp.Regexp, foundMsg, missingMsg string, missStatus types.Status, recs []string) Outcome {
	if scan.AnyMatch(re) {
		return Outcome{Status: types.StatusPass, Findings: []string{foundMsg}}
	}
	return Outcome{Status: missStatus, Findings: []string{missingMsg}, Recommendations: recs}
}

// pattern pairs a regex with the label used in findings.
type pattern struct {
	re    *regexp.Regexp
	label string
}

// negative flags risky constructs. Every distinct matched pattern is
// reported, not just the first; no matches at all passes.
func negative(files []scanner.File, pats []pattern, hitStatus types.Status, recs []string) Outcome {
	if len(files) == 0 {
		return notApplicable()
	}
	var findings []string
	for _, p := range pats {
		count := 0
		example := ""
		for _, f := range files {
			if p.re.MatchString(f.Content) {
				count++
				if example == "" {
					example = f.Path
				}
			}
		}
		if count > 0 {
			findings = append(findings, fmt.Sprintf("%s in %d file(s) (e.g. %s)", p.label, count, example))
		}
	}
	if len(findings) == 0 {
		return Outcome{Status: types.StatusPass}
	}
	return Outcome{Status: hitStatus, Findings: findings, Recommendations: recs}
}

// handlerFiles approximates "request handling" code: files living under
// route/controller/handler/api directories, or any code file referencing an
// HTTP request object when the tree has no such layout.
func handlerFiles(scan *scanner.Result) []scanner.File {
	files := scan.WithPathContains("routes", "controllers", "handlers", "api", "endpoints")
	if len(files) > 0 {
		return files
	}
	var out []scanner.File
	for _, f := range scan.Code() {
		if reHTTPRequest.MatchString(f.Content) {
			out = append(out, f)
		}
	}
	return out
}

var reHTTPRequest = regexp.MustCompile(`(?i)(req\.(body|query|params)|http\.Request|request\.(GET|POST|form)|@(Get|Post|Put|Delete)Mapping)`)
