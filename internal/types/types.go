package types

import "time"

// Taxonomy selects which check catalog an audit runs.
type Taxonomy string

const (
	TaxonomySecurity      Taxonomy = "security"
	TaxonomyAccessibility Taxonomy = "accessibility"
)

// Severity is the ranked impact level of a check, independent of its outcome.
type Severity string

const (
	SevCritical Severity = "critical"
	SevHigh     Severity = "high"
	SevMedium   Severity = "medium"
	SevLow      Severity = "low"
	SevInfo     Severity = "info"
)

// Rank orders severities for prioritization; higher is more severe.
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 4
	case SevHigh:
		return 3
	case SevMedium:
		return 2
	case SevLow:
		return 1
	default:
		return 0
	}
}

// Status is the outcome of a single check. It is a closed set; the
// aggregator switches over it exhaustively.
type Status string

const (
	StatusPass          Status = "pass"
	StatusFail          Status = "fail"
	StatusWarning       Status = "warning"
	StatusNotApplicable Status = "not_applicable"
)

// OverallStatus is the derived verdict for a whole audit.
type OverallStatus string

const (
	Compliant    OverallStatus = "compliant"
	NonCompliant OverallStatus = "non_compliant"
	NeedsReview  OverallStatus = "needs_review"
)

// Level is a WCAG conformance level. Accessibility checks carry one;
// security checks leave it empty.
type Level string

const (
	LevelA   Level = "A"
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Rank orders levels; an audit with floor AA includes A and AA checks.
func (l Level) Rank() int {
	switch l {
	case LevelA:
		return 1
	case LevelAA:
		return 2
	case LevelAAA:
		return 3
	default:
		return 0
	}
}

// Category groups related checks: an OWASP Top-10 category for the
// security taxonomy, a WCAG principle for the accessibility taxonomy.
type Category string

const (
	CatBrokenAccessControl Category = "A01_Broken_Access_Control"
	CatCryptoFailures      Category = "A02_Cryptographic_Failures"
	CatInjection           Category = "A03_Injection"
	CatInsecureDesign      Category = "A04_Insecure_Design"
	CatMisconfiguration    Category = "A05_Security_Misconfiguration"
	CatVulnComponents      Category = "A06_Vulnerable_Components"
	CatAuthFailures        Category = "A07_Auth_Failures"
	CatIntegrityFailures   Category = "A08_Integrity_Failures"
	CatLoggingFailures     Category = "A09_Logging_Failures"
	CatSSRF                Category = "A10_SSRF"
)

const (
	CatPerceivable    Category = "Perceivable"
	CatOperable       Category = "Operable"
	CatUnderstandable Category = "Understandable"
	CatRobust         Category = "Robust"
)

// SecurityCategories lists the ten OWASP categories in catalog order.
func SecurityCategories() []Category {
	return []Category{
		CatBrokenAccessControl, CatCryptoFailures, CatInjection,
		CatInsecureDesign, CatMisconfiguration, CatVulnComponents,
		CatAuthFailures, CatIntegrityFailures, CatLoggingFailures, CatSSRF,
	}
}

// AccessibilityPrinciples lists the four WCAG principles in catalog order.
func AccessibilityPrinciples() []Category {
	return []Category{CatPerceivable, CatOperable, CatUnderstandable, CatRobust}
}

// CheckResult is one evaluated check: a snapshot of its definition plus
// the detector outcome. A not_applicable result carries no findings.
type CheckResult struct {
	ID              string   `json:"id"`
	Category        Category `json:"category"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Severity        Severity `json:"severity"`
	Level           Level    `json:"level,omitempty"`
	Automated       bool     `json:"automated"`
	References      []string `json:"references,omitempty"`
	Status          Status   `json:"status"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
}

// CategoryResult aggregates the checks sharing a category.
type CategoryResult struct {
	TotalChecks     int      `json:"totalChecks"`
	Passed          int      `json:"passed"`
	Failed          int      `json:"failed"`
	Warnings        int      `json:"warnings"`
	NotApplicable   int      `json:"notApplicable"`
	Status          Status   `json:"status"`
	Priority        Severity `json:"priority"`
	ComplianceScore int      `json:"complianceScore"`
}

// Summary holds the global counters for an audit.
type Summary struct {
	TotalChecks     int `json:"totalChecks"`
	Passed          int `json:"passed"`
	Failed          int `json:"failed"`
	Warnings        int `json:"warnings"`
	NotApplicable   int `json:"notApplicable"`
	ComplianceScore int `json:"complianceScore"`
	CriticalIssues  int `json:"criticalIssues"`
	HighIssues      int `json:"highIssues"`
	MediumIssues    int `json:"mediumIssues"`
	LowIssues       int `json:"lowIssues"`
}

// RepoMetadata is best-effort git context for the audited tree. Fields are
// blank when the root is not a repository.
type RepoMetadata struct {
	Repo   string `json:"repo,omitempty"`
	Commit string `json:"commit,omitempty"`
	Branch string `json:"branch,omitempty"`
}

// AuditReport is the full result of one audit run. It is constructed fresh
// on every run and never mutated afterwards.
type AuditReport struct {
	Taxonomy        Taxonomy                    `json:"taxonomy"`
	Timestamp       time.Time                   `json:"timestamp"`
	ApplicationName string                      `json:"applicationName"`
	RootDir         string                      `json:"rootDir"`
	Checks          []CheckResult               `json:"checks"`
	CategoryResults map[Category]CategoryResult `json:"categoryResults"`
	Summary         Summary                     `json:"summary"`
	OverallStatus   OverallStatus               `json:"overallStatus"`
	NextSteps       []string                    `json:"nextSteps"`
	FilesScanned    int                         `json:"filesScanned"`
	ScanDigest      string                      `json:"scanDigest,omitempty"`
	Repo            RepoMetadata                `json:"repo"`
}
