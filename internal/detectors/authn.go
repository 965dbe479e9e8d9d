package detectors

import (
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	rePasswordPolicy = regexp.MustCompile(`(?i)(minLength|min_length|password.{0,20}(strength|policy|requirements)|zxcvbn)`)
	reCookieConfig   = regexp.MustCompile(`(?i)(cookie\s*[:({]|session\(\{|set_cookie|SetCookie)`)
	reCookieFlags    = regexp.MustCompile(`(?i)(httpOnly|secure\s*:\s*true|sameSite|SameSite)`)
	reLockout        = regexp.MustCompile(`(?i)(lockout|login_?attempts|max_?attempts|account.{0,10}lock)`)
	reMFA            = regexp.MustCompile(`(?i)(\bmfa\b|\b2fa\b|totp|speakeasy|authenticator|webauthn)`)
)

// PasswordPolicy looks for password strength enforcement.
func PasswordPolicy(scan *scanner.Result) Outcome {
	if !scan.AnyMatch(reAuthCheck) {
		return notApplicable()
	}
	return presence(scan, rePasswordPolicy,
		"password policy enforcement referenced",
		"no password policy enforcement found",
		types.StatusWarning,
		[]string{"Enforce minimum length and strength checks on password creation"})
}

// SessionCookieFlags verifies session/cookie configuration carries security
// flags. Trees configuring no cookies are inapplicable.
func SessionCookieFlags(scan *scanner.Result) Outcome {
	var cookieFiles []scanner.File
	for _, f := range scan.Code() {
		if reCookieConfig.MatchString(f.Content) {
			cookieFiles = append(cookieFiles, f)
		}
	}
	if len(cookieFiles) == 0 {
		return notApplicable()
	}
	return coverage(cookieFiles, reCookieFlags,
		"of cookie-configuring files set httpOnly/secure/sameSite", 0.5, 1.0,
		[]string{"Set httpOnly, secure, and sameSite on every session cookie"})
}

// BruteForceLockout looks for login attempt limiting.
func BruteForceLockout(scan *scanner.Result) Outcome {
	if !scan.AnyMatch(reAuthCheck) {
		return notApplicable()
	}
	return presence(scan, reLockout,
		"login attempt limiting referenced",
		"no brute-force lockout mechanism found",
		types.StatusWarning,
		[]string{"Lock or delay accounts after repeated failed logins"})
}

// MultiFactorAuth looks for MFA support.
func MultiFactorAuth(scan *scanner.Result) Outcome {
	if !scan.AnyMatch(reAuthCheck) {
		return notApplicable()
	}
	return presence(scan, reMFA,
		"multi-factor authentication referenced",
		"no multi-factor authentication support found",
		types.StatusWarning,
		[]string{"Offer TOTP or WebAuthn as a second factor"})
}
