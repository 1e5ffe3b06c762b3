package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/plancheck/pkg/version"
)

// NewRootCmd builds the plancheck command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "plancheck",
		Short: "Lint planning documents for structure and requirement traceability",
		Long: `plancheck validates the planning documents of a module directory.

  structure   report required ## sections that are missing or still placeholders
  trace       report requirement IDs (R1, R2, ...) in the matrix that no other
              planning document references

Both checks print a short report and exit non-zero when they find problems,
so they can run in CI or a pre-commit hook.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("plancheck %s\n", version.GetFullVersion()))
	root.SetFlagErrorFunc(usageError)

	root.AddCommand(newStructureCmd("structure"))
	root.AddCommand(newTraceCmd("trace"))
	return root
}

// Execute runs the plancheck command tree with os.Args and returns the
// process exit code.
func Execute() int {
	return run(NewRootCmd())
}

// ExecuteStructure runs the structure check as a standalone command.
func ExecuteStructure() int {
	cmd := newStructureCmd("check-structure")
	cmd.Version = version.GetVersion()
	return run(cmd)
}

// ExecuteTrace runs the traceability check as a standalone command.
func ExecuteTrace() int {
	cmd := newTraceCmd("check-traceability")
	cmd.Version = version.GetVersion()
	return run(cmd)
}

func run(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err != nil {
		reportError(cmd, err)
	}
	return ExitCode(err)
}
