package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/plancheck/internal/report"
	"github.com/modu-ai/plancheck/internal/structure"
)

type structureOptions struct {
	commonOptions
	schema     string
	checkEmpty bool
}

func newStructureCmd(use string) *cobra.Command {
	opts := &structureOptions{}
	cmd := &cobra.Command{
		Use:   use,
		Short: "Check planning documents for required ## sections",
		Long: `Check planning documents for required ## sections.

The schema is a JSON (or YAML) object mapping each document filename to the
list of ## headings it must contain. By default it is read from
schema/moduleN.json next to the plancheck binary, and documents are read from
PROJECT_ROOT/moduleN.

With --check-empty, required sections whose body holds at most one line of
real content (ignoring blank lines, <!-- comments --> and lines containing
"TODO" or "How to fill") are reported as placeholders.

Exit codes:
  0  all required sections present (or the schema does not exist)
  1  a required section is missing, or a placeholder with --check-empty
  2  the schema exists but is malformed or unreadable`,
		Example: `  plancheck structure --module 2
  plancheck structure --module-dir ./module1 --schema ./schema/module1.json --check-empty`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStructure(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(usageError)

	opts.bind(cmd)
	f := cmd.Flags()
	f.StringVar(&opts.schema, "schema", "", "path to the schema file (default: TOOL_DIR/schema/moduleN.json)")
	f.BoolVar(&opts.checkEmpty, "check-empty", false, "also report required sections that are still only TODO/placeholder")
	return cmd
}

func runStructure(cmd *cobra.Command, opts *structureOptions) error {
	env, err := opts.prepare(cmd)
	if err != nil {
		return err
	}

	schemaPath := env.layout.SchemaPath(env.cfg.Structure.SchemaDir)
	if opts.schema != "" {
		if schemaPath, err = filepath.Abs(opts.schema); err != nil {
			return fmt.Errorf("resolve schema path: %w", err)
		}
	}

	schema, err := structure.LoadSchema(schemaPath)
	switch {
	case errors.Is(err, structure.ErrSchemaNotFound):
		slog.Warn("schema not found, skipping structure check", "path", schemaPath)
		return opts.emit(cmd, env, &report.Report{Check: "structure", Skipped: "schema-not-found", Findings: []report.Finding{}})
	case errors.Is(err, structure.ErrInvalidSchema), errors.Is(err, structure.ErrSchemaUnreadable):
		return &ExitError{Code: ExitSchemaError, Err: fmt.Errorf("schema error: %w", err)}
	case err != nil:
		return err
	}
	slog.Debug("loaded schema", "path", schemaPath, "documents", schema.Filenames())

	sum, err := structure.Check(env.moduleDir, schema, structure.Options{
		CheckEmpty: opts.checkEmpty,
		Rules:      structure.RulesFromConfig(env.cfg.Structure.Placeholder),
	})
	if err != nil {
		return err
	}

	rep := report.FromStructure(sum, env.layout.ModuleName(), opts.checkEmpty)
	if err := opts.emit(cmd, env, rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if rep.HasError {
		return errFindings
	}
	return nil
}
