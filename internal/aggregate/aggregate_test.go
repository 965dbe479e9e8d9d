package aggregate

import (
	"strings"
	"testing"

	"github.com/complyscan/complyscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(id string, cat types.Category, sev types.Severity, st types.Status) types.CheckResult {
	return types.CheckResult{ID: id, Category: cat, Name: id, Severity: sev, Status: st}
}

func TestAggregate_PartitionExact(t *testing.T) {
	checks := []types.CheckResult{
		check("A01-001", types.CatBrokenAccessControl, types.SevHigh, types.StatusPass),
		check("A01-002", types.CatBrokenAccessControl, types.SevHigh, types.StatusFail),
		check("A02-001", types.CatCryptoFailures, types.SevMedium, types.StatusWarning),
		check("A02-002", types.CatCryptoFailures, types.SevLow, types.StatusNotApplicable),
	}
	_, sum := Aggregate(checks)
	require.Equal(t, 4, sum.TotalChecks)
	assert.Equal(t, sum.TotalChecks, sum.Passed+sum.Failed+sum.Warnings+sum.NotApplicable)
	assert.Equal(t, 1, sum.Passed)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 1, sum.Warnings)
	assert.Equal(t, 1, sum.NotApplicable)
}

func TestAggregate_ScoreBounds(t *testing.T) {
	_, sum := Aggregate(nil)
	assert.Equal(t, 100, sum.ComplianceScore, "empty audit is vacuously compliant")

	checks := []types.CheckResult{
		check("A01-001", types.CatBrokenAccessControl, types.SevHigh, types.StatusFail),
	}
	_, sum = Aggregate(checks)
	assert.Equal(t, 0, sum.ComplianceScore)
}

func TestAggregate_SeverityTallyAsymmetry(t *testing.T) {
	checks := []types.CheckResult{
		// a critical warning is NOT a critical issue
		check("A02-001", types.CatCryptoFailures, types.SevCritical, types.StatusWarning),
		// but a high warning IS a high issue
		check("A02-002", types.CatCryptoFailures, types.SevHigh, types.StatusWarning),
		check("A02-003", types.CatCryptoFailures, types.SevHigh, types.StatusFail),
		check("A05-001", types.CatMisconfiguration, types.SevMedium, types.StatusWarning),
		check("A06-001", types.CatVulnComponents, types.SevLow, types.StatusFail),
	}
	_, sum := Aggregate(checks)
	assert.Equal(t, 0, sum.CriticalIssues)
	assert.Equal(t, 2, sum.HighIssues)
	assert.Equal(t, 1, sum.MediumIssues)
	assert.Equal(t, 1, sum.LowIssues)
}

func TestAggregate_CategoryResults(t *testing.T) {
	checks := []types.CheckResult{
		check("A03-001", types.CatInjection, types.SevCritical, types.StatusPass),
		check("A03-002", types.CatInjection, types.SevHigh, types.StatusWarning),
		check("A03-003", types.CatInjection, types.SevMedium, types.StatusPass),
	}
	cats, _ := Aggregate(checks)
	cr := cats[types.CatInjection]
	require.Equal(t, 3, cr.TotalChecks)
	assert.Equal(t, types.StatusWarning, cr.Status, "warning when no fails but a warning exists")
	assert.Equal(t, types.SevCritical, cr.Priority, "priority is the max severity present")
	assert.Equal(t, 67, cr.ComplianceScore, "2/3 rounds to 67")
}

func TestOverall_CriticalOverridesScore(t *testing.T) {
	// 19 passes and one critical fail: score 95, still non_compliant
	var checks []types.CheckResult
	for i := 0; i < 19; i++ {
		checks = append(checks, check("A01-001", types.CatBrokenAccessControl, types.SevLow, types.StatusPass))
	}
	checks = append(checks, check("A02-001", types.CatCryptoFailures, types.SevCritical, types.StatusFail))
	_, sum := Aggregate(checks)
	require.Equal(t, 95, sum.ComplianceScore)
	assert.Equal(t, types.NonCompliant, Overall(sum))
}

func TestOverall_Scenario10Checks(t *testing.T) {
	var checks []types.CheckResult
	for i := 0; i < 7; i++ {
		checks = append(checks, check("A01-001", types.CatBrokenAccessControl, types.SevHigh, types.StatusPass))
	}
	for i := 0; i < 3; i++ {
		checks = append(checks, check("A02-001", types.CatCryptoFailures, types.SevHigh, types.StatusFail))
	}
	_, sum := Aggregate(checks)
	require.Equal(t, 70, sum.ComplianceScore)
	assert.GreaterOrEqual(t, sum.HighIssues, 3)
	assert.Equal(t, types.NeedsReview, Overall(sum))
}

func TestOverall_Thresholds(t *testing.T) {
	assert.Equal(t, types.Compliant, Overall(types.Summary{ComplianceScore: 80}))
	assert.Equal(t, types.NeedsReview, Overall(types.Summary{ComplianceScore: 79}))
	assert.Equal(t, types.NonCompliant, Overall(types.Summary{ComplianceScore: 100, CriticalIssues: 1}))
}

func TestNextSteps_Ordering(t *testing.T) {
	checks := []types.CheckResult{
		check("A05-002", types.CatMisconfiguration, types.SevMedium, types.StatusWarning),
		check("A02-001", types.CatCryptoFailures, types.SevCritical, types.StatusFail),
		check("A01-002", types.CatBrokenAccessControl, types.SevHigh, types.StatusWarning),
	}
	_, sum := Aggregate(checks)
	steps := NextSteps(checks, sum)
	require.GreaterOrEqual(t, len(steps), 4)
	assert.True(t, strings.HasPrefix(steps[0], "URGENT:"), "critical failures come first: %q", steps[0])
	assert.True(t, strings.HasPrefix(steps[1], "High priority:"))
	assert.True(t, strings.HasPrefix(steps[2], "Medium priority:"))
	assert.Contains(t, steps[len(steps)-1], "continuous integration")
}

func TestNextSteps_NeverEmpty(t *testing.T) {
	checks := []types.CheckResult{
		check("A01-001", types.CatBrokenAccessControl, types.SevHigh, types.StatusPass),
	}
	_, sum := Aggregate(checks)
	steps := NextSteps(checks, sum)
	require.NotEmpty(t, steps)
	assert.Contains(t, steps[0], "passed")

	steps = NextSteps(nil, types.Summary{})
	require.NotEmpty(t, steps)
}

func TestAggregate_UnknownStatusPanics(t *testing.T) {
	bad := check("A01-001", types.CatBrokenAccessControl, types.SevHigh, "")
	require.Panics(t, func() {
		Aggregate([]types.CheckResult{bad})
	})
}
