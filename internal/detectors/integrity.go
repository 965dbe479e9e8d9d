package detectors

import (
	"fmt"
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reUnsafeDeser  = regexp.MustCompile(`(pickle\.loads|yaml\.load\(|unserialize\(|Marshal\.load|ObjectInputStream)`)
	reCDNScript    = regexp.MustCompile(`<script[^>]+src=["']https?://[^"']+["'][^>]*>`)
	reSRIAttribute = regexp.MustCompile(`integrity=["']sha(256|384|512)-`)
	reInstallHook  = regexp.MustCompile(`"(pre|post)install"\s*:`)
)

// UnsafeDeserialization flags deserializers that execute attacker-controlled
// structure.
func UnsafeDeserialization(scan *scanner.Result) Outcome {
	return negative(scan.Code(), []pattern{
		{reUnsafeDeser, "unsafe deserialization construct"},
	}, types.StatusFail, []string{
		"Use safe loaders (yaml.safe_load, JSON) for untrusted input",
	})
}

// SubresourceIntegrity checks that externally hosted scripts carry an
// integrity attribute.
func SubresourceIntegrity(scan *scanner.Result) Outcome {
	markup := scan.Markup()
	if len(markup) == 0 {
		return notApplicable()
	}
	external, protected := 0, 0
	example := ""
	for _, f := range markup {
		for _, tag := range reCDNScript.FindAllString(f.Content, -1) {
			external++
			if reSRIAttribute.MatchString(tag) {
				protected++
			} else if example == "" {
				example = f.Path
			}
		}
	}
	if external == 0 {
		return notApplicable()
	}
	finding := fmt.Sprintf("%d/%d external scripts carry an integrity attribute", protected, external)
	if protected == external {
		return Outcome{Status: types.StatusPass, Findings: []string{finding}}
	}
	return Outcome{
		Status:          types.StatusWarning,
		Findings:        []string{finding, "first unprotected reference: " + example},
		Recommendations: []string{"Add SRI integrity hashes to CDN-hosted scripts"},
	}
}

// InstallHooks flags npm lifecycle scripts that run arbitrary code on
// install.
func InstallHooks(scan *scanner.Result) Outcome {
	pkg, ok := scan.Named("package.json")
	if !ok {
		return notApplicable()
	}
	if reInstallHook.MatchString(pkg.Content) {
		return Outcome{
			Status:          types.StatusWarning,
			Findings:        []string{"package.json declares pre/postinstall scripts"},
			Recommendations: []string{"Review install hooks; use --ignore-scripts in CI where possible"},
		}
	}
	return Outcome{Status: types.StatusPass, Findings: []string{"no install lifecycle hooks declared"}}
}
