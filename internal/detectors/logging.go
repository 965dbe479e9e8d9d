package detectors

import (
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reLogLibrary  = regexp.MustCompile(`(?i)(winston|pino|morgan|bunyan|log4js|zerolog|zap\.|logrus|structlog|logging\.getLogger)`)
	reAuthLogging = regexp.MustCompile(`(?i)(log[^\n]{0,40}(login|logout|auth|failed attempt)|audit[_-]?log)`)
	reSensitiveLog = regexp.MustCompile(`(?i)(console\.log|logger?\.\w+|print)\([^)]*\b(password|secret|token|ssn|card)`)
)

// LoggingLibrary verifies a structured logging library is in use.
func LoggingLibrary(scan *scanner.Result) Outcome {
	return presence(scan, reLogLibrary,
		"logging library referenced",
		"no logging library referenced",
		types.StatusFail,
		[]string{"Adopt a structured logger and capture errors with context"})
}

// AuthEventLogging looks for logging of authentication events.
func AuthEventLogging(scan *scanner.Result) Outcome {
	if !scan.AnyMatch(reAuthCheck) {
		return notApplicable()
	}
	return presence(scan, reAuthLogging,
		"authentication events appear to be logged",
		"no logging of authentication events found",
		types.StatusWarning,
		[]string{"Log login successes, failures, and privilege changes for monitoring"})
}

// SensitiveDataInLogs flags secrets and credentials passed to log calls.
func SensitiveDataInLogs(scan *scanner.Result) Outcome {
	return negative(scan.Code(), []pattern{
		{reSensitiveLog, "sensitive value passed to a log call"},
	}, types.StatusFail, []string{
		"Redact passwords, tokens, and card data before logging",
	})
}
