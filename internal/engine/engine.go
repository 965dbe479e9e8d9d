package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/complyscan/complyscan/internal/aggregate"
	"github.com/complyscan/complyscan/internal/detectors"
	"github.com/complyscan/complyscan/internal/gitmeta"
	"github.com/complyscan/complyscan/internal/registry"
	"github.com/complyscan/complyscan/internal/report"
	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

// Config controls audit behavior: scope, performance, and reporting.
type Config struct {
	Root            string
	ApplicationName string
	MaxFiles        int
	MaxBytes        int64
	IncludeGlobs    string
	ExcludeGlobs    string
	Timeout         time.Duration // per-check budget
	Workers         int
	SkipCategories  []types.Category
	Level           types.Level // accessibility conformance floor
	GenerateReport  bool
	OutputDir       string
	Verbose         bool
}

const (
	defaultTimeout   = 10 * time.Second
	defaultOutputDir = "compliance-reports"
)

// Auditor runs one taxonomy's checks against a source tree.
type Auditor struct {
	cfg Config
	reg *registry.Registry
	log zerolog.Logger
}

// New validates cfg and builds an Auditor. Configuration problems are the
// only errors that abort a run; everything downstream degrades instead.
func New(cfg Config, reg *registry.Registry) (*Auditor, error) {
	if reg == nil {
		return nil, fmt.Errorf("nil registry")
	}
	if cfg.Root == "" {
		return nil, fmt.Errorf("root directory is required")
	}
	if cfg.MaxFiles < 0 || cfg.MaxBytes < 0 {
		return nil, fmt.Errorf("file limits must be non-negative")
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be non-negative")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	if cfg.ApplicationName == "" {
		cfg.ApplicationName = filepath.Base(cfg.Root)
	}
	if reg.Taxonomy() == types.TaxonomyAccessibility && cfg.Level == "" {
		cfg.Level = types.LevelAA
	}

	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().
		Str("taxonomy", string(reg.Taxonomy())).Logger()

	return &Auditor{cfg: cfg, reg: reg, log: log}, nil
}

// Audit evaluates every applicable check and returns the report. Individual
// check failures, timeouts, and panics become failing results; only ctx
// cancellation surfaces as an error.
func (a *Auditor) Audit(ctx context.Context) (*types.AuditReport, error) {
	started := time.Now()

	scan := scanner.Scan(scanner.Config{
		Root:            a.cfg.Root,
		MaxFiles:        a.cfg.MaxFiles,
		MaxBytes:        a.cfg.MaxBytes,
		IncludeGlobs:    a.cfg.IncludeGlobs,
		ExcludeGlobs:    a.cfg.ExcludeGlobs,
		DefaultExcludes: true,
	})
	a.log.Debug().Int("files", len(scan.Files)).Bool("truncated", scan.Truncated).Msg("scan complete")

	defs := a.reg.Checks(a.cfg.SkipCategories, a.cfg.Level)
	results := make([]types.CheckResult, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, def := range defs {
		i, def := i, def
		g.Go(func() error {
			results[i] = a.runCheck(gctx, def, scan)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("audit interrupted: %w", err)
	}

	catResults, sum := aggregate.Aggregate(results)

	rep := &types.AuditReport{
		Taxonomy:        a.reg.Taxonomy(),
		Timestamp:       time.Now().UTC(),
		ApplicationName: a.cfg.ApplicationName,
		RootDir:         a.cfg.Root,
		Checks:          results,
		CategoryResults: catResults,
		Summary:         sum,
		OverallStatus:   aggregate.Overall(sum),
		NextSteps:       aggregate.NextSteps(results, sum),
		FilesScanned:    len(scan.Files),
		ScanDigest:      scan.Digest(),
		Repo:            gitmeta.Describe(a.cfg.Root),
	}

	a.log.Info().
		Int("checks", sum.TotalChecks).
		Int("score", sum.ComplianceScore).
		Str("status", string(rep.OverallStatus)).
		Dur("elapsed", time.Since(started)).
		Msg("audit complete")

	if a.cfg.GenerateReport {
		jsonPath, mdPath, err := report.Save(rep, a.cfg.OutputDir)
		if err != nil {
			a.log.Error().Err(err).Msg("failed to write report artifacts")
		} else {
			a.log.Info().Str("json", jsonPath).Str("markdown", mdPath).Msg("report artifacts written")
		}
	}
	return rep, nil
}

// runCheck evaluates one check with a time budget and panic isolation.
func (a *Auditor) runCheck(ctx context.Context, def registry.CheckDefinition, scan *scanner.Result) types.CheckResult {
	res := types.CheckResult{
		ID:          def.ID,
		Category:    def.Category,
		Name:        def.Name,
		Description: def.Description,
		Severity:    def.Severity,
		Level:       def.Level,
		Automated:   def.Automated,
		References:  def.References,
	}

	done := make(chan detectors.Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.log.Error().Str("check", def.ID).Any("panic", r).Msg("check panicked")
				done <- detectors.Outcome{
					Status:   types.StatusFail,
					Findings: []string{fmt.Sprintf("check aborted: %v", r)},
				}
			}
		}()
		done <- def.Run(scan)
	}()

	var out detectors.Outcome
	select {
	case out = <-done:
	case <-time.After(a.cfg.Timeout):
		a.log.Warn().Str("check", def.ID).Dur("timeout", a.cfg.Timeout).Msg("check timed out")
		out = detectors.Outcome{
			Status:   types.StatusFail,
			Findings: []string{"check exceeded time budget"},
		}
	case <-ctx.Done():
		out = detectors.Outcome{
			Status:   types.StatusFail,
			Findings: []string{"audit cancelled"},
		}
	}

	res.Status = out.Status
	res.Findings = out.Findings
	res.Recommendations = out.Recommendations
	if res.Status == types.StatusNotApplicable {
		// A not applicable check never carries findings.
		res.Findings = nil
	}
	if res.Findings == nil {
		res.Findings = []string{}
	}
	if res.Recommendations == nil {
		res.Recommendations = []string{}
	}
	return res
}
