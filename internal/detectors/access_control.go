package detectors

import (
	"fmt"
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reAuthCheck = regexp.MustCompile(`(?i)(requireAuth|isAuthenticated|ensureLoggedIn|authenticate\(|authorize\(|passport\.|jwt\.verify|req\.session\.user|\.User\(\)|login_required)`)
	reRoleCheck = regexp.MustCompile(`(?i)(isAdmin|requireRole|hasPermission|hasRole|rbac|accessControl|can\(|ability\.)`)
	reIDLookup  = regexp.MustCompile(`(?i)(req\.params\.id|params\[:id\]|request\.args\.get\(['"]id)`)
	reOwnership = regexp.MustCompile(`(?i)(owner|user_?id\s*===?|userId\s*===?|belongs_?to|\.uid\b)`)
	reCSRF      = regexp.MustCompile(`(?i)(csurf|csrf|xsrf|anti.?forgery|X-CSRF-Token|SameSite\s*[:=]\s*["']?(strict|lax))`)
)

// AuthCoverage measures what fraction of request-handling files carry an
// authentication check.
func AuthCoverage(scan *scanner.Result) Outcome {
	return coverage(handlerFiles(scan), reAuthCheck,
		"contain authentication checks", 0.5, 0.8,
		[]string{
			"Protect every non-public route with authentication middleware",
			"Centralize auth enforcement instead of per-route checks",
		})
}

// RoleChecks verifies that role or permission checks exist somewhere in the
// application.
func RoleChecks(scan *scanner.Result) Outcome {
	return presence(scan, reRoleCheck,
		"role/permission checks referenced",
		"no role or permission checks found",
		types.StatusWarning,
		[]string{"Enforce server-side role checks for privileged operations"})
}

// CSRFProtection verifies that a tree with request handlers references some
// CSRF defense: token middleware, anti-forgery headers, or strict SameSite
// cookies.
func CSRFProtection(scan *scanner.Result) Outcome {
	if len(handlerFiles(scan)) == 0 {
		return notApplicable()
	}
	return presence(scan, reCSRF,
		"CSRF protection referenced",
		"no CSRF protection found",
		types.StatusFail,
		[]string{"Add CSRF token middleware or set session cookies to SameSite=Strict"})
}

// ObjectOwnership flags ID-based lookups in handlers that never compare the
// record owner against the requesting user.
func ObjectOwnership(scan *scanner.Result) Outcome {
	var lookups []scanner.File
	for _, f := range handlerFiles(scan) {
		if reIDLookup.MatchString(f.Content) {
			lookups = append(lookups, f)
		}
	}
	if len(lookups) == 0 {
		return notApplicable()
	}
	guarded := scanner.CountMatching(lookups, reOwnership)
	finding := fmt.Sprintf("%d/%d files with ID-based lookups compare record ownership", guarded, len(lookups))
	if guarded == 0 {
		return Outcome{
			Status:   types.StatusWarning,
			Findings: []string{finding},
			Recommendations: []string{
				"Verify the authenticated user owns the requested record before returning it",
			},
		}
	}
	return Outcome{Status: types.StatusPass, Findings: []string{finding}}
}
