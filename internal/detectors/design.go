package detectors

import (
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reRateLimit     = regexp.MustCompile(`(?i)(express-rate-limit|rate-?limit|rateLimiter|throttle|golang\.org/x/time/rate|limiter\.)`)
	reCaptcha       = regexp.MustCompile(`(?i)(recaptcha|hcaptcha|captcha|turnstile)`)
	reServerSideAmt = regexp.MustCompile(`(?i)(price|amount|total)[^=\n]*=\s*(req\.body|params|request\.(form|POST))`)
)

// RateLimiting verifies a rate-limiting library or middleware is referenced.
func RateLimiting(scan *scanner.Result) Outcome {
	return presence(scan, reRateLimit,
		"rate-limiting library referenced",
		"no rate-limiting library referenced",
		types.StatusFail,
		[]string{"Rate-limit authentication and expensive endpoints"})
}

// AntiAutomation looks for CAPTCHA or bot-mitigation references on trees
// that have authentication flows.
func AntiAutomation(scan *scanner.Result) Outcome {
	if !scan.AnyMatch(reAuthCheck) {
		return notApplicable()
	}
	return presence(scan, reCaptcha,
		"anti-automation (CAPTCHA) referenced",
		"auth flows present but no anti-automation measure referenced",
		types.StatusWarning,
		[]string{"Add CAPTCHA or equivalent bot mitigation to signup and login"})
}

// TrustedPricing flags prices or totals taken directly from the request
// body, a classic business-logic flaw. Requires manual confirmation.
func TrustedPricing(scan *scanner.Result) Outcome {
	out := negative(scan.Code(), []pattern{
		{reServerSideAmt, "price/amount assigned from client input"},
	}, types.StatusWarning, []string{
		"Recompute prices and totals server-side; treat client amounts as display-only",
	})
	if out.Status == types.StatusPass {
		// heuristic cannot prove correct server-side pricing, only flag misuse
		out.Findings = append(out.Findings, "no client-supplied pricing detected; confirm totals are computed server-side")
	}
	return out
}
