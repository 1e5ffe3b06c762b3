package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/plancheck/internal/report"
	"github.com/modu-ai/plancheck/internal/trace"
)

type traceOptions struct {
	commonOptions
	reportMissing bool
}

func newTraceCmd(use string) *cobra.Command {
	opts := &traceOptions{}
	cmd := &cobra.Command{
		Use:     use,
		Aliases: []string{"traceability"},
		Short:   "Check requirement IDs in the matrix are referenced elsewhere",
		Long: `Check requirement ID traceability.

Requirement IDs (R followed by digits, e.g. R1 or R42) are extracted from
REQUIREMENTS_MATRIX.md. Every ID must also appear in VERIFICATION_PLAN.md or
HIGH_PRIORITY_REQUIREMENTS_TRACEABILITY.md; IDs that appear in neither are
orphans. With --report-missing, IDs referenced by those documents but absent
from the matrix are listed for information.

Document names can be changed in .plancheck.yaml at the project root.

Exit codes:
  0  no orphan IDs (also when the matrix is absent or declares no IDs)
  1  at least one orphan ID`,
		Example: `  plancheck trace --module 1
  plancheck trace --module-dir ./module1 --report-missing`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrace(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(usageError)

	opts.bind(cmd)
	cmd.Flags().BoolVar(&opts.reportMissing, "report-missing", false, "also report IDs referenced elsewhere but not in the matrix (never fails)")
	return cmd
}

func runTrace(cmd *cobra.Command, opts *traceOptions) error {
	env, err := opts.prepare(cmd)
	if err != nil {
		return err
	}

	docs := trace.DocumentsFromConfig(env.cfg.Traceability)
	res, err := trace.Check(env.moduleDir, trace.Options{
		Documents:     docs,
		ReportMissing: opts.reportMissing,
	})
	if err != nil {
		return err
	}

	switch res.Skipped {
	case trace.SkipNoMatrix:
		slog.Warn(docs.Matrix+" not found, skipping traceability check",
			"path", filepath.Join(env.moduleDir, docs.Matrix))
	case trace.SkipNoIDs:
		slog.Warn("no requirement IDs (R1, R2, ...) found in "+docs.Matrix+", skipping traceability check")
	}

	rep := report.FromTrace(res, env.layout.ModuleName())
	if err := opts.emit(cmd, env, rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if rep.HasError {
		return errFindings
	}
	return nil
}
