package aggregate

import (
	"fmt"

	"github.com/complyscan/complyscan/internal/types"
)

// NextSteps converts aggregated results into a prioritized action list. The
// list is never empty: a clean audit still yields an affirmative entry, so
// consumers can distinguish "perfect score" from "not yet run".
func NextSteps(checks []types.CheckResult, sum types.Summary) []string {
	var steps []string

	for _, c := range checks {
		if c.Severity == types.SevCritical && c.Status == types.StatusFail {
			steps = append(steps, fmt.Sprintf("URGENT: %s (%s): %s", c.Name, c.ID, firstAction(c)))
		}
	}
	for _, c := range checks {
		if c.Severity == types.SevHigh && (c.Status == types.StatusFail || c.Status == types.StatusWarning) {
			steps = append(steps, fmt.Sprintf("High priority: %s (%s): %s", c.Name, c.ID, firstAction(c)))
		}
	}
	for _, c := range checks {
		if c.Severity == types.SevMedium && (c.Status == types.StatusFail || c.Status == types.StatusWarning) {
			steps = append(steps, fmt.Sprintf("Medium priority: %s (%s): %s", c.Name, c.ID, firstAction(c)))
		}
	}

	if len(steps) == 0 {
		steps = append(steps, fmt.Sprintf("All %d checks passed; keep the current posture under review", sum.TotalChecks))
	}
	steps = append(steps, "Re-run the audit after each fix and wire it into continuous integration")
	return steps
}

func firstAction(c types.CheckResult) string {
	if len(c.Recommendations) > 0 {
		return c.Recommendations[0]
	}
	if len(c.Findings) > 0 {
		return c.Findings[0]
	}
	return c.Description
}
