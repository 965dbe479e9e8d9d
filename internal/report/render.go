package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/complyscan/complyscan/internal/types"
)

type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	naStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	critSevStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	highSevStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	medSevStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	lowSevStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// IsTerminal reports whether w is attached to a TTY; plain output
// is used when it is not (pipes, CI logs, redirects).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintSummary renders the audit outcome for a terminal: a category
// table, the failed and warning checks, and a score footer.
func PrintSummary(w io.Writer, rep *types.AuditReport, opts PrintOptions) {
	style := func(s lipgloss.Style, text string) string {
		if opts.NoColor {
			return text
		}
		return s.Render(text)
	}

	fmt.Fprintln(w, style(titleStyle, taxonomyTitle(rep.Taxonomy)))
	fmt.Fprintf(w, "%s (%s)\n\n", rep.ApplicationName, rep.RootDir)

	table := tablewriter.NewTable(w)
	table.Header("Category", "Status", "Passed", "Failed", "Warnings", "Score")
	for _, cat := range orderedCategories(rep) {
		cr, ok := rep.CategoryResults[cat]
		if !ok {
			continue
		}
		_ = table.Append(
			categoryLabel(cat),
			style(statusStyle(cr.Status), string(cr.Status)),
			fmt.Sprintf("%d", cr.Passed),
			fmt.Sprintf("%d", cr.Failed),
			fmt.Sprintf("%d", cr.Warnings),
			fmt.Sprintf("%d%%", cr.ComplianceScore),
		)
	}
	_ = table.Render()

	printed := false
	for _, chk := range rep.Checks {
		if chk.Status != types.StatusFail && chk.Status != types.StatusWarning {
			continue
		}
		if !printed {
			fmt.Fprintln(w)
			printed = true
		}
		fmt.Fprintf(w, "%s %s [%s] %s\n",
			style(statusStyle(chk.Status), string(chk.Status)),
			chk.ID,
			style(severityStyle(chk.Severity), string(chk.Severity)),
			chk.Name)
		for _, f := range chk.Findings {
			fmt.Fprintf(w, "    %s\n", f)
		}
	}

	sum := rep.Summary
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Checks: %d (passed: %d, failed: %d, warnings: %d, n/a: %d)\n",
		sum.TotalChecks, sum.Passed, sum.Failed, sum.Warnings, sum.NotApplicable)
	fmt.Fprintf(w, "Issues: critical: %d, high: %d, medium: %d, low: %d\n",
		sum.CriticalIssues, sum.HighIssues, sum.MediumIssues, sum.LowIssues)
	fmt.Fprintf(w, "Compliance score: %d%%  (%s)\n", sum.ComplianceScore,
		style(overallStyle(rep.OverallStatus), overallLabel(rep.OverallStatus)))
	if rep.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", rep.FilesScanned)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Audit duration: %.2fs\n", opts.Duration.Seconds())
	}
}

func statusStyle(s types.Status) lipgloss.Style {
	switch s {
	case types.StatusPass:
		return passStyle
	case types.StatusFail:
		return failStyle
	case types.StatusWarning:
		return warnStyle
	default:
		return naStyle
	}
}

func severityStyle(s types.Severity) lipgloss.Style {
	switch s {
	case types.SevCritical:
		return critSevStyle
	case types.SevHigh:
		return highSevStyle
	case types.SevMedium:
		return medSevStyle
	default:
		return lowSevStyle
	}
}

func overallStyle(s types.OverallStatus) lipgloss.Style {
	switch s {
	case types.Compliant:
		return passStyle
	case types.NonCompliant:
		return failStyle
	default:
		return warnStyle
	}
}
