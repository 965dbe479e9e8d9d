package complyscan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/complyscan/complyscan/internal/config"
	"github.com/complyscan/complyscan/internal/engine"
	"github.com/complyscan/complyscan/internal/registry"
	"github.com/complyscan/complyscan/internal/report"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	flagPath     string
	flagName     string
	flagInclude  string
	flagExclude  string
	flagMaxFiles int
	flagMaxBytes int64
	flagTimeout  time.Duration
	flagSkip     []string
)

func addAuditFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to audit")
	cmd.Flags().StringVar(&flagName, "name", "", "application name for the report (default: directory name)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().IntVar(&flagMaxFiles, "max-files", 0, "stop collecting file contents after this many (0 = default)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (0 = default)")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "time budget per check (e.g. 10s)")
	cmd.Flags().StringSliceVar(&flagSkip, "skip", nil, "category identifiers to skip (e.g. A10_SSRF, Robust)")
}

func runAudit(cmd *cobra.Command, reg *registry.Registry) error {
	abs, _ := filepath.Abs(flagPath)

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	skip, err := resolveSkips(reg.Taxonomy(), pickStrings(flagSkip, lcfg.SkipCategories, gcfg.SkipCategories))
	if err != nil {
		return err
	}

	var level types.Level
	if reg.Taxonomy() == types.TaxonomyAccessibility {
		level, err = resolveLevel(flagLevel, cmd.Flags().Changed("level"), lcfg.Level, gcfg.Level)
		if err != nil {
			return err
		}
	}

	// timeout precedence: CLI > local > global
	timeout := flagTimeout
	if timeout == 0 {
		if s := pickString("", lcfg.Timeout, gcfg.Timeout); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return fmt.Errorf("invalid timeout %q in config: %w", s, err)
			}
			timeout = d
		}
	}

	cfg := engine.Config{
		Root:            abs,
		ApplicationName: pickString(flagName, lcfg.ApplicationName, gcfg.ApplicationName),
		MaxFiles:        pickInt(flagMaxFiles, lcfg.MaxFiles, gcfg.MaxFiles),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		Timeout:         timeout,
		Workers:         pickInt(flagWorkers, lcfg.Workers, gcfg.Workers),
		SkipCategories:  skip,
		Level:           level,
		GenerateReport:  !pickBool(flagNoReport, lcfg.NoReport, gcfg.NoReport),
		OutputDir:       pickString(flagOutputDir, lcfg.OutputDir, gcfg.OutputDir),
		Verbose:         flagVerbose,
	}

	aud, err := engine.New(cfg, reg)
	if err != nil {
		return err
	}

	started := time.Now()
	rep, err := aud.Audit(cmd.Context())
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) || !report.IsTerminal(os.Stdout)
		report.PrintSummary(os.Stdout, rep, report.PrintOptions{
			NoColor:  noColor,
			Duration: time.Since(started),
		})
	}

	// Gate the exit code for CI: non_compliant always fails the run;
	// --strict also fails needs_review.
	strict := pickBool(flagStrict, lcfg.Strict, gcfg.Strict)
	if rep.OverallStatus == types.NonCompliant || (strict && rep.OverallStatus != types.Compliant) {
		os.Exit(1)
	}
	return nil
}

// resolveSkips maps raw category names onto the taxonomy's catalog,
// rejecting names the catalog does not know.
func resolveSkips(taxonomy types.Taxonomy, raw []string) ([]types.Category, error) {
	catalog := types.SecurityCategories()
	if taxonomy == types.TaxonomyAccessibility {
		catalog = types.AccessibilityPrinciples()
	}
	known := make(map[string]types.Category, len(catalog))
	for _, c := range catalog {
		known[strings.ToLower(string(c))] = c
	}
	var out []types.Category
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cat, ok := known[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown category %q for %s audit", name, taxonomy)
		}
		out = append(out, cat)
	}
	return out, nil
}
