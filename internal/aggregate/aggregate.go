package aggregate

import (
	"fmt"
	"math"

	"github.com/complyscan/complyscan/internal/types"
)

// Aggregate partitions checks by status, groups them per category, and
// computes the global summary. Every check falls into exactly one bucket.
func Aggregate(checks []types.CheckResult) (map[types.Category]types.CategoryResult, types.Summary) {
	cats := map[types.Category]types.CategoryResult{}
	var sum types.Summary
	sum.TotalChecks = len(checks)

	for _, c := range checks {
		cr := cats[c.Category]
		cr.TotalChecks++
		switch c.Status {
		case types.StatusPass:
			cr.Passed++
			sum.Passed++
		case types.StatusFail:
			cr.Failed++
			sum.Failed++
		case types.StatusWarning:
			cr.Warnings++
			sum.Warnings++
		case types.StatusNotApplicable:
			cr.NotApplicable++
			sum.NotApplicable++
		default:
			// Every result must land in exactly one bucket; anything else
			// is a programmer error upstream.
			panic(fmt.Sprintf("aggregate: unknown check status %q for %s", c.Status, c.ID))
		}
		if c.Severity.Rank() > cr.Priority.Rank() {
			cr.Priority = c.Severity
		}
		cats[c.Category] = cr

		// criticalIssues counts failures only; the lower tiers deliberately
		// include warnings as well.
		switch c.Severity {
		case types.SevCritical:
			if c.Status == types.StatusFail {
				sum.CriticalIssues++
			}
		case types.SevHigh:
			if c.Status == types.StatusFail || c.Status == types.StatusWarning {
				sum.HighIssues++
			}
		case types.SevMedium:
			if c.Status == types.StatusFail || c.Status == types.StatusWarning {
				sum.MediumIssues++
			}
		case types.SevLow:
			if c.Status == types.StatusFail || c.Status == types.StatusWarning {
				sum.LowIssues++
			}
		}
	}

	for cat, cr := range cats {
		cr.Status = categoryStatus(cr)
		cr.ComplianceScore = score(cr.Passed, cr.TotalChecks)
		cats[cat] = cr
	}
	sum.ComplianceScore = score(sum.Passed, sum.TotalChecks)
	return cats, sum
}

// score is round(passed/total*100), vacuously 100 when total is zero so an
// audit with every category skipped never reports 0%.
func score(passed, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

func categoryStatus(cr types.CategoryResult) types.Status {
	switch {
	case cr.Failed > 0:
		return types.StatusFail
	case cr.Warnings > 0:
		return types.StatusWarning
	default:
		return types.StatusPass
	}
}

// Overall derives the audit verdict. A single critical failure overrides an
// otherwise-high score.
func Overall(sum types.Summary) types.OverallStatus {
	switch {
	case sum.CriticalIssues > 0:
		return types.NonCompliant
	case sum.ComplianceScore >= 80:
		return types.Compliant
	default:
		return types.NeedsReview
	}
}
