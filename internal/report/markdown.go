package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/complyscan/complyscan/internal/types"
)

func taxonomyTitle(t types.Taxonomy) string {
	if t == types.TaxonomyAccessibility {
		return "WCAG 2.1 AA Accessibility Audit"
	}
	return "OWASP Top 10 Security Audit"
}

func statusIcon(s types.Status) string {
	switch s {
	case types.StatusPass:
		return "✅"
	case types.StatusFail:
		return "❌"
	case types.StatusWarning:
		return "⚠️"
	default:
		return "➖"
	}
}

// WriteMarkdown renders the human-readable report. Every number and
// finding in the JSON artifact appears here as well, so either file
// can stand alone.
func WriteMarkdown(w io.Writer, rep *types.AuditReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", taxonomyTitle(rep.Taxonomy))
	fmt.Fprintf(&b, "- **Application:** %s\n", rep.ApplicationName)
	fmt.Fprintf(&b, "- **Audited path:** %s\n", rep.RootDir)
	fmt.Fprintf(&b, "- **Generated:** %s\n", rep.Timestamp.Format("2006-01-02 15:04:05 MST"))
	if rep.Repo.Branch != "" || rep.Repo.Commit != "" {
		fmt.Fprintf(&b, "- **Revision:** %s @ %s\n", rep.Repo.Branch, rep.Repo.Commit)
	}
	if rep.ScanDigest != "" {
		fmt.Fprintf(&b, "- **Scan digest:** %s\n", rep.ScanDigest)
	}
	b.WriteString("\n")

	writeExecutiveSummary(&b, rep)
	writeCategoryResults(&b, rep)
	writeDetailedFindings(&b, rep)
	writeNextSteps(&b, rep)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeExecutiveSummary(b *strings.Builder, rep *types.AuditReport) {
	sum := rep.Summary
	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(b, "**Overall status:** %s %s\n\n", overallIcon(rep.OverallStatus), overallLabel(rep.OverallStatus))
	fmt.Fprintf(b, "**Compliance score:** %d%%\n\n", sum.ComplianceScore)
	b.WriteString("| Metric | Count |\n|---|---|\n")
	fmt.Fprintf(b, "| Total checks | %d |\n", sum.TotalChecks)
	fmt.Fprintf(b, "| Passed | %d |\n", sum.Passed)
	fmt.Fprintf(b, "| Failed | %d |\n", sum.Failed)
	fmt.Fprintf(b, "| Warnings | %d |\n", sum.Warnings)
	fmt.Fprintf(b, "| Not applicable | %d |\n", sum.NotApplicable)
	fmt.Fprintf(b, "| Critical issues | %d |\n", sum.CriticalIssues)
	fmt.Fprintf(b, "| High issues | %d |\n", sum.HighIssues)
	fmt.Fprintf(b, "| Medium issues | %d |\n", sum.MediumIssues)
	fmt.Fprintf(b, "| Low issues | %d |\n", sum.LowIssues)
	fmt.Fprintf(b, "| Files scanned | %d |\n", rep.FilesScanned)
	b.WriteString("\n")
}

func writeCategoryResults(b *strings.Builder, rep *types.AuditReport) {
	b.WriteString("## Category Results\n\n")
	b.WriteString("| Category | Status | Passed | Failed | Warnings | Score |\n|---|---|---|---|---|---|\n")
	for _, cat := range orderedCategories(rep) {
		cr, ok := rep.CategoryResults[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "| %s | %s %s | %d | %d | %d | %d%% |\n",
			categoryLabel(cat), statusIcon(cr.Status), cr.Status, cr.Passed, cr.Failed, cr.Warnings, cr.ComplianceScore)
	}
	b.WriteString("\n")
}

func writeDetailedFindings(b *strings.Builder, rep *types.AuditReport) {
	b.WriteString("## Detailed Findings\n\n")
	for _, cat := range orderedCategories(rep) {
		if _, ok := rep.CategoryResults[cat]; !ok {
			continue
		}
		fmt.Fprintf(b, "### %s\n\n", categoryLabel(cat))
		for _, chk := range rep.Checks {
			if chk.Category != cat {
				continue
			}
			fmt.Fprintf(b, "#### %s %s: %s\n\n", statusIcon(chk.Status), chk.ID, chk.Name)
			fmt.Fprintf(b, "%s\n\n", chk.Description)
			fmt.Fprintf(b, "- **Status:** %s\n", chk.Status)
			fmt.Fprintf(b, "- **Severity:** %s\n", chk.Severity)
			if rep.Taxonomy == types.TaxonomyAccessibility && chk.Level != "" {
				fmt.Fprintf(b, "- **Level:** %s\n", chk.Level)
			}
			if len(chk.References) > 0 {
				fmt.Fprintf(b, "- **References:** %s\n", strings.Join(chk.References, ", "))
			}
			if len(chk.Findings) > 0 {
				b.WriteString("\n**Findings:**\n\n")
				for _, f := range chk.Findings {
					fmt.Fprintf(b, "- %s\n", f)
				}
			}
			if len(chk.Recommendations) > 0 {
				b.WriteString("\n**Recommendations:**\n\n")
				for _, r := range chk.Recommendations {
					fmt.Fprintf(b, "- %s\n", r)
				}
			}
			b.WriteString("\n")
		}
	}
}

func writeNextSteps(b *strings.Builder, rep *types.AuditReport) {
	b.WriteString("## Next Steps\n\n")
	for i, step := range rep.NextSteps {
		fmt.Fprintf(b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n")
}

// orderedCategories returns the catalog order for the taxonomy,
// restricted later to categories the report actually contains.
func orderedCategories(rep *types.AuditReport) []types.Category {
	if rep.Taxonomy == types.TaxonomyAccessibility {
		return types.AccessibilityPrinciples()
	}
	return types.SecurityCategories()
}

func categoryLabel(c types.Category) string {
	return strings.ReplaceAll(string(c), "_", " ")
}

func overallLabel(s types.OverallStatus) string {
	switch s {
	case types.Compliant:
		return "Compliant"
	case types.NonCompliant:
		return "Non-Compliant"
	default:
		return "Needs Review"
	}
}

func overallIcon(s types.OverallStatus) string {
	switch s {
	case types.Compliant:
		return "🟢"
	case types.NonCompliant:
		return "🔴"
	default:
		return "🟡"
	}
}
