package detectors

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	semver "github.com/blang/semver/v4"
)

// VulnReport summarizes a dependency vulnerability scan by severity.
type VulnReport struct {
	Info     int `json:"info"`
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
	Critical int `json:"critical"`
}

// Total returns the number of reported vulnerabilities across severities.
func (v VulnReport) Total() int {
	return v.Info + v.Low + v.Moderate + v.High + v.Critical
}

// VulnerabilityScanner is the narrow seam to an external dependency audit
// tool, kept small so tests can substitute a fake.
type VulnerabilityScanner interface {
	Scan(root string) (VulnReport, error)
}

// NPMAudit runs `npm audit --json` in the audited tree.
type NPMAudit struct {
	// run executes a command in dir and returns its combined output. npm
	// audit exits non-zero when vulnerabilities exist, so output is returned
	// alongside the error.
	run func(dir, name string, args ...string) ([]byte, error)
}

// NewNPMAudit returns a scanner backed by the npm binary on PATH.
func NewNPMAudit() *NPMAudit {
	return &NPMAudit{run: func(dir, name string, args ...string) ([]byte, error) {
		cmd := exec.Command(name, args...)
		cmd.Dir = dir
		return cmd.CombinedOutput()
	}}
}

// minNPM is the first npm major whose audit --json output uses the
// metadata.vulnerabilities shape parsed here.
var minNPM = semver.MustParse("7.0.0")

type npmAuditOutput struct {
	Metadata struct {
		Vulnerabilities VulnReport `json:"vulnerabilities"`
	} `json:"metadata"`
}

// Scan runs npm audit and parses severity counts from its JSON output.
func (n *NPMAudit) Scan(root string) (VulnReport, error) {
	verOut, err := n.run(root, "npm", "--version")
	if err != nil {
		return VulnReport{}, fmt.Errorf("npm not available: %w", err)
	}
	ver, err := semver.ParseTolerant(strings.TrimSpace(string(verOut)))
	if err != nil {
		return VulnReport{}, fmt.Errorf("cannot parse npm version %q: %w", strings.TrimSpace(string(verOut)), err)
	}
	if ver.LT(minNPM) {
		return VulnReport{}, fmt.Errorf("npm %s too old, need >= %s for audit --json", ver, minNPM)
	}

	out, runErr := n.run(root, "npm", "audit", "--json")
	var parsed npmAuditOutput
	if jsonErr := json.Unmarshal(out, &parsed); jsonErr != nil {
		if runErr != nil {
			return VulnReport{}, fmt.Errorf("npm audit failed: %w", runErr)
		}
		return VulnReport{}, fmt.Errorf("cannot parse npm audit output: %w", jsonErr)
	}
	return parsed.Metadata.Vulnerabilities, nil
}
