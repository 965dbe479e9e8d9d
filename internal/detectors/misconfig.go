package detectors

import (
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reSecHeaders   = regexp.MustCompile(`(?i)(helmet|secure_headers|SecurityHeaders|Content-Security-Policy|X-Frame-Options|Strict-Transport-Security)`)
	reDebugMode    = regexp.MustCompile(`(?i)(DEBUG\s*=\s*[Tt]rue|app\.set\(['"]env['"],\s*['"]development|printStackTrace|debug:\s*true)`)
	reWildcardCORS = regexp.MustCompile(`(?i)(Access-Control-Allow-Origin['"]?\s*[,:]\s*['"]\*|origin:\s*['"]\*['"]|AllowOrigins:\s*\[\]string\{"\*"\})`)
	reDefaultCreds = regexp.MustCompile(`(?i)(admin['"]?\s*[,:=]\s*['"]admin|root['"]?\s*[,:=]\s*['"](root|toor|password)|['"]changeme['"])`)
)

// SecurityHeaders verifies a security-header middleware or the headers
// themselves are referenced.
func SecurityHeaders(scan *scanner.Result) Outcome {
	return presence(scan, reSecHeaders,
		"security headers middleware referenced",
		"no security headers configuration found",
		types.StatusFail,
		[]string{"Add helmet (or equivalent) to set CSP, HSTS, and frame protections"})
}

// DebugExposure flags debug mode toggles and stack-trace printing.
func DebugExposure(scan *scanner.Result) Outcome {
	return negative(scan.Code(), []pattern{
		{reDebugMode, "debug mode enabled"},
	}, types.StatusWarning, []string{
		"Disable debug output and verbose stack traces outside development",
	})
}

// WildcardCORS flags wide-open cross-origin policies.
func WildcardCORS(scan *scanner.Result) Outcome {
	return negative(scan.Files, []pattern{
		{reWildcardCORS, "wildcard CORS origin"},
	}, types.StatusFail, []string{
		"Restrict Access-Control-Allow-Origin to known origins",
	})
}

// DefaultCredentials flags well-known default username/password pairs.
func DefaultCredentials(scan *scanner.Result) Outcome {
	return negative(scan.Files, []pattern{
		{reDefaultCreds, "default credential pair"},
	}, types.StatusFail, []string{
		"Remove default credentials; require strong secrets at install time",
	})
}
