package detectors

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

// DependencyVulnerabilities builds the external-tool check: it shells out to
// a dependency audit and maps severity counts to a status. A tool failure is
// evidence of unmanaged risk and fails the check rather than aborting the
// audit.
func DependencyVulnerabilities(vs VulnerabilityScanner) Func {
	return func(scan *scanner.Result) Outcome {
		if !scan.HasName("package.json") {
			return notApplicable()
		}
		rep, err := vs.Scan(scan.Root)
		if err != nil {
			return Outcome{
				Status:   types.StatusFail,
				Findings: []string{fmt.Sprintf("dependency vulnerability scan failed: %v", err)},
				Recommendations: []string{
					"Make `npm audit` runnable in CI so dependency risk is visible",
				},
			}
		}
		finding := fmt.Sprintf("npm audit: %d critical, %d high, %d moderate, %d low, %d info",
			rep.Critical, rep.High, rep.Moderate, rep.Low, rep.Info)
		switch {
		case rep.Critical > 0 || rep.High > 0:
			return Outcome{
				Status:          types.StatusFail,
				Findings:        []string{finding},
				Recommendations: []string{"Upgrade or replace packages with critical/high advisories"},
			}
		case rep.Moderate > 0 || rep.Low > 0:
			return Outcome{
				Status:          types.StatusWarning,
				Findings:        []string{finding},
				Recommendations: []string{"Schedule upgrades for packages with open advisories"},
			}
		default:
			return Outcome{Status: types.StatusPass, Findings: []string{finding}}
		}
	}
}

// LockfilePresence verifies dependency versions are locked.
func LockfilePresence(scan *scanner.Result) Outcome {
	if !scan.HasName("package.json") {
		return notApplicable()
	}
	for _, lock := range []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml"} {
		if scan.HasName(lock) {
			return Outcome{Status: types.StatusPass, Findings: []string{lock + " present"}}
		}
	}
	return Outcome{
		Status:          types.StatusFail,
		Findings:        []string{"package.json present but no lockfile found"},
		Recommendations: []string{"Commit a lockfile so builds resolve identical dependency trees"},
	}
}

// PinnedVersions flags loose semver ranges in package.json dependencies.
func PinnedVersions(scan *scanner.Result) Outcome {
	pkg, ok := scan.Named("package.json")
	if !ok {
		return notApplicable()
	}
	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal([]byte(pkg.Content), &manifest); err != nil {
		return Outcome{
			Status:   types.StatusWarning,
			Findings: []string{fmt.Sprintf("cannot parse %s: %v", pkg.Path, err)},
		}
	}
	loose := 0
	total := 0
	for _, deps := range []map[string]string{manifest.Dependencies, manifest.DevDependencies} {
		for _, v := range deps {
			total++
			if v == "*" || v == "latest" || strings.HasPrefix(v, "^") || strings.HasPrefix(v, "~") || strings.HasPrefix(v, ">") {
				loose++
			}
		}
	}
	if total == 0 {
		return notApplicable()
	}
	finding := fmt.Sprintf("%d/%d dependencies use loose version ranges", loose, total)
	if loose == 0 {
		return Outcome{Status: types.StatusPass, Findings: []string{finding}}
	}
	return Outcome{
		Status:          types.StatusWarning,
		Findings:        []string{finding},
		Recommendations: []string{"Rely on the lockfile, and pin ranges for security-sensitive packages"},
	}
}
