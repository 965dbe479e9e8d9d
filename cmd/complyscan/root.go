package complyscan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON      bool
	flagNoColor   bool
	flagVerbose   bool
	flagStrict    bool
	flagWorkers   int
	flagOutputDir string
	flagNoReport  bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the complyscan CLI.
var rootCmd = &cobra.Command{
	Use:           "complyscan",
	Short:         "Audit a source tree for security and accessibility compliance",
	Long:          "Complyscan runs heuristic OWASP Top 10 and WCAG 2.1 audits over a source tree and produces scorable compliance reports.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the complyscan CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit the full report as JSON on stdout")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "also exit non-zero when the audit needs review")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "concurrent checks (0 = CPU count)")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "directory for report artifacts (default compliance-reports)")
	rootCmd.PersistentFlags().BoolVar(&flagNoReport, "no-report", false, "skip writing report artifacts")
}
