package detectors

import (
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reUserControlledFetch = regexp.MustCompile(`(?i)(fetch|axios(\.\w+)?|got|request|http\.get|urllib\.request\.urlopen|requests\.(get|post))\([^)\n]*(req\.(query|body|params)|request\.(args|form)|params\[)`)
	reOutboundFetch       = regexp.MustCompile(`(?i)(fetch\(|axios|got\(|http\.get|urlopen|requests\.(get|post))`)
	reURLAllowlist        = regexp.MustCompile(`(?i)(allow(ed)?_?(hosts|origins|urls|list)|whitelist|url\.Parse|new URL\(|validateUrl|isValidUrl)`)
	reInternalAddress     = regexp.MustCompile(`(?i)(169\.254\.169\.254|metadata\.google\.internal|(fetch|axios|got|http\.get)\([^)\n]*(127\.0\.0\.1|0\.0\.0\.0|internal|intranet))`)
)

// UserControlledFetch flags outbound requests whose target comes straight
// from request input.
func UserControlledFetch(scan *scanner.Result) Outcome {
	return negative(scan.Code(), []pattern{
		{reUserControlledFetch, "outbound request built from user input"},
	}, types.StatusFail, []string{
		"Resolve outbound targets from a server-side allowlist, never raw input",
	})
}

// URLValidation checks that trees making outbound requests validate or
// allowlist their targets.
func URLValidation(scan *scanner.Result) Outcome {
	outbound := 0
	for _, f := range scan.Code() {
		if reOutboundFetch.MatchString(f.Content) {
			outbound++
		}
	}
	if outbound == 0 {
		return notApplicable()
	}
	return presence(scan, reURLAllowlist,
		"URL validation or allowlisting referenced",
		"outbound requests present but no URL validation found",
		types.StatusWarning,
		[]string{"Parse and allowlist outbound URLs; block link-local and private ranges"})
}

// InternalAddressAccess flags requests to link-local metadata services and
// internal hosts.
func InternalAddressAccess(scan *scanner.Result) Outcome {
	return negative(scan.Code(), []pattern{
		{reInternalAddress, "request to internal or metadata address"},
	}, types.StatusWarning, []string{
		"Block server-side requests to metadata and internal addresses",
	})
}
