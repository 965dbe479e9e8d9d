package registry

import (
	"github.com/complyscan/complyscan/internal/detectors"
	"github.com/complyscan/complyscan/internal/types"
)

// NewSecurity builds the OWASP Top-10 catalog. The dependency check shells
// out through vs, injected so tests can substitute a fake; nil selects the
// npm-backed default.
func NewSecurity(vs detectors.VulnerabilityScanner) (*Registry, error) {
	if vs == nil {
		vs = detectors.NewNPMAudit()
	}
	return New(types.TaxonomySecurity, securityChecks(vs))
}

func securityChecks(vs detectors.VulnerabilityScanner) []CheckDefinition {
	return []CheckDefinition{
		// A01 Broken Access Control
		{
			ID: "A01-001", Category: types.CatBrokenAccessControl,
			Name:        "Authentication Coverage",
			Description: "Request-handling files carry authentication checks.",
			Severity:    types.SevCritical, Automated: true,
			References: []string{"CWE-284", "CWE-306"},
			Run:        detectors.AuthCoverage,
		},
		{
			ID: "A01-002", Category: types.CatBrokenAccessControl,
			Name:        "Role and Permission Checks",
			Description: "Privileged operations verify roles or permissions server-side.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-285"},
			Run:        detectors.RoleChecks,
		},
		{
			ID: "A01-003", Category: types.CatBrokenAccessControl,
			Name:        "Object Ownership Verification",
			Description: "ID-based record lookups compare ownership against the requester.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-639"},
			Run:        detectors.ObjectOwnership,
		},
		{
			ID: "A01-004", Category: types.CatBrokenAccessControl,
			Name:        "CSRF Protection",
			Description: "State-changing requests are protected against cross-site request forgery.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-352"},
			Run:        detectors.CSRFProtection,
		},

		// A02 Cryptographic Failures
		{
			ID: "A02-001", Category: types.CatCryptoFailures,
			Name:        "Weak Cryptographic Algorithms",
			Description: "No MD5, SHA-1, DES, RC4, or ECB-mode usage.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-327", "CWE-328"},
			Run:        detectors.WeakCrypto,
		},
		{
			ID: "A02-002", Category: types.CatCryptoFailures,
			Name:        "Password Hashing",
			Description: "Passwords are hashed with bcrypt, argon2, scrypt, or PBKDF2.",
			Severity:    types.SevCritical, Automated: true,
			References: []string{"CWE-916"},
			Run:        detectors.PasswordHashing,
		},
		{
			ID: "A02-003", Category: types.CatCryptoFailures,
			Name:        "Hardcoded Credentials",
			Description: "No credential-looking literals committed to source.",
			Severity:    types.SevCritical, Automated: true,
			References: []string{"CWE-798"},
			Run:        detectors.HardcodedCredentials,
		},
		{
			ID: "A02-004", Category: types.CatCryptoFailures,
			Name:        "Transport Security",
			Description: "Certificate verification stays enabled and external calls use HTTPS.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-319", "CWE-295"},
			Run:        detectors.TransportSecurity,
		},

		// A03 Injection
		{
			ID: "A03-001", Category: types.CatInjection,
			Name:        "SQL Injection Protection",
			Description: "No SQL statements built from string concatenation.",
			Severity:    types.SevCritical, Automated: true,
			References: []string{"CWE-89"},
			Run:        detectors.SQLConcatenation,
		},
		{
			ID: "A03-002", Category: types.CatInjection,
			Name:        "Parameterized Queries",
			Description: "SQL goes through placeholders or prepared statements.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-89"},
			Run:        detectors.ParameterizedQueries,
		},
		{
			ID: "A03-003", Category: types.CatInjection,
			Name:        "Dynamic Code Execution",
			Description: "No eval-style execution or shell commands built from input.",
			Severity:    types.SevCritical, Automated: true,
			References: []string{"CWE-95", "CWE-78"},
			Run:        detectors.DynamicCodeExecution,
		},
		{
			ID: "A03-004", Category: types.CatInjection,
			Name:        "Input Validation Coverage",
			Description: "Request handlers validate payloads with a schema validator.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-20"},
			Run:        detectors.InputValidationCoverage,
		},

		// A04 Insecure Design
		{
			ID: "A04-001", Category: types.CatInsecureDesign,
			Name:        "Rate Limiting",
			Description: "A rate-limiting library protects expensive endpoints.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-770"},
			Run:        detectors.RateLimiting,
		},
		{
			ID: "A04-002", Category: types.CatInsecureDesign,
			Name:        "Anti-Automation",
			Description: "Signup and login flows carry bot mitigation.",
			Severity:    types.SevMedium, Automated: true,
			References: []string{"CWE-799"},
			Run:        detectors.AntiAutomation,
		},
		{
			ID: "A04-003", Category: types.CatInsecureDesign,
			Name:        "Server-Side Pricing",
			Description: "Prices and totals are computed server-side, not trusted from clients.",
			Severity:    types.SevHigh, Automated: false,
			References: []string{"CWE-840"},
			Run:        detectors.TrustedPricing,
		},

		// A05 Security Misconfiguration
		{
			ID: "A05-001", Category: types.CatMisconfiguration,
			Name:        "Security Headers",
			Description: "CSP, HSTS, and frame protections are configured.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-693"},
			Run:        detectors.SecurityHeaders,
		},
		{
			ID: "A05-002", Category: types.CatMisconfiguration,
			Name:        "Debug Exposure",
			Description: "Debug mode and verbose stack traces are disabled.",
			Severity:    types.SevMedium, Automated: true,
			References: []string{"CWE-489"},
			Run:        detectors.DebugExposure,
		},
		{
			ID: "A05-003", Category: types.CatMisconfiguration,
			Name:        "CORS Policy",
			Description: "Cross-origin access is restricted to known origins.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-942"},
			Run:        detectors.WildcardCORS,
		},
		{
			ID: "A05-004", Category: types.CatMisconfiguration,
			Name:        "Default Credentials",
			Description: "No well-known default username/password pairs.",
			Severity:    types.SevCritical, Automated: true,
			References: []string{"CWE-1392"},
			Run:        detectors.DefaultCredentials,
		},

		// A06 Vulnerable and Outdated Components
		{
			ID: "A06-001", Category: types.CatVulnComponents,
			Name:        "Dependency Vulnerabilities",
			Description: "npm audit reports no known vulnerable dependencies.",
			Severity:    types.SevCritical, Automated: true,
			References: []string{"CWE-1395"},
			Run:        detectors.DependencyVulnerabilities(vs),
		},
		{
			ID: "A06-002", Category: types.CatVulnComponents,
			Name:        "Dependency Lockfile",
			Description: "A lockfile pins the resolved dependency tree.",
			Severity:    types.SevMedium, Automated: true,
			References: []string{"CWE-1104"},
			Run:        detectors.LockfilePresence,
		},
		{
			ID: "A06-003", Category: types.CatVulnComponents,
			Name:        "Version Pinning",
			Description: "Security-sensitive dependencies avoid loose version ranges.",
			Severity:    types.SevLow, Automated: true,
			References: []string{"CWE-1104"},
			Run:        detectors.PinnedVersions,
		},

		// A07 Identification and Authentication Failures
		{
			ID: "A07-001", Category: types.CatAuthFailures,
			Name:        "Password Policy",
			Description: "Password creation enforces minimum strength.",
			Severity:    types.SevMedium, Automated: true,
			References: []string{"CWE-521"},
			Run:        detectors.PasswordPolicy,
		},
		{
			ID: "A07-002", Category: types.CatAuthFailures,
			Name:        "Session Cookie Flags",
			Description: "Session cookies set httpOnly, secure, and sameSite.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-1004", "CWE-614"},
			Run:        detectors.SessionCookieFlags,
		},
		{
			ID: "A07-003", Category: types.CatAuthFailures,
			Name:        "Brute-Force Lockout",
			Description: "Repeated failed logins trigger lockout or delay.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-307"},
			Run:        detectors.BruteForceLockout,
		},
		{
			ID: "A07-004", Category: types.CatAuthFailures,
			Name:        "Multi-Factor Authentication",
			Description: "A second factor is available for account access.",
			Severity:    types.SevInfo, Automated: true,
			References: []string{"CWE-308"},
			Run:        detectors.MultiFactorAuth,
		},

		// A08 Software and Data Integrity Failures
		{
			ID: "A08-001", Category: types.CatIntegrityFailures,
			Name:        "Safe Deserialization",
			Description: "Untrusted input never reaches unsafe deserializers.",
			Severity:    types.SevCritical, Automated: true,
			References: []string{"CWE-502"},
			Run:        detectors.UnsafeDeserialization,
		},
		{
			ID: "A08-002", Category: types.CatIntegrityFailures,
			Name:        "Subresource Integrity",
			Description: "CDN-hosted scripts carry integrity hashes.",
			Severity:    types.SevMedium, Automated: true,
			References: []string{"CWE-353"},
			Run:        detectors.SubresourceIntegrity,
		},
		{
			ID: "A08-003", Category: types.CatIntegrityFailures,
			Name:        "Install Hooks",
			Description: "npm lifecycle scripts are reviewed and minimal.",
			Severity:    types.SevLow, Automated: true,
			References: []string{"CWE-829"},
			Run:        detectors.InstallHooks,
		},

		// A09 Security Logging and Monitoring Failures
		{
			ID: "A09-001", Category: types.CatLoggingFailures,
			Name:        "Logging Library",
			Description: "A structured logging library is in use.",
			Severity:    types.SevMedium, Automated: true,
			References: []string{"CWE-778"},
			Run:        detectors.LoggingLibrary,
		},
		{
			ID: "A09-002", Category: types.CatLoggingFailures,
			Name:        "Auth Event Logging",
			Description: "Login successes, failures, and privilege changes are logged.",
			Severity:    types.SevMedium, Automated: true,
			References: []string{"CWE-778"},
			Run:        detectors.AuthEventLogging,
		},
		{
			ID: "A09-003", Category: types.CatLoggingFailures,
			Name:        "Sensitive Data in Logs",
			Description: "Secrets and credentials never reach log output.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-532"},
			Run:        detectors.SensitiveDataInLogs,
		},

		// A10 Server-Side Request Forgery
		{
			ID: "A10-001", Category: types.CatSSRF,
			Name:        "User-Controlled Fetch",
			Description: "Outbound request targets never come straight from user input.",
			Severity:    types.SevCritical, Automated: true,
			References: []string{"CWE-918"},
			Run:        detectors.UserControlledFetch,
		},
		{
			ID: "A10-002", Category: types.CatSSRF,
			Name:        "URL Validation",
			Description: "Outbound targets are parsed and allowlisted.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-918"},
			Run:        detectors.URLValidation,
		},
		{
			ID: "A10-003", Category: types.CatSSRF,
			Name:        "Internal Address Access",
			Description: "No requests to metadata services or internal hosts.",
			Severity:    types.SevHigh, Automated: true,
			References: []string{"CWE-918"},
			Run:        detectors.InternalAddressAccess,
		},
	}
}
