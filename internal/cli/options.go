package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/plancheck/internal/config"
	"github.com/modu-ai/plancheck/internal/report"
)

// commonOptions are the flags shared by every check command.
type commonOptions struct {
	module    int
	moduleDir string
	quiet     bool
	format    string
	verbose   bool
}

func (o *commonOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&o.module, "module", config.DefaultModule, "module number; selects the default document root moduleN")
	f.StringVar(&o.moduleDir, "module-dir", "", "module root directory (default: PROJECT_ROOT/moduleN)")
	f.BoolVar(&o.quiet, "quiet", false, "only set the exit code; print nothing on stdout")
	f.StringVar(&o.format, "format", string(report.FormatText), "report format: text or json")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log debug details to stderr")
}

// checkEnv is the resolved environment a check runs in.
type checkEnv struct {
	layout    config.Layout
	cfg       *config.Config
	moduleDir string
	format    report.Format
}

// prepare configures logging and resolves layout, project config and the
// module directory.
func (o *commonOptions) prepare(cmd *cobra.Command) (*checkEnv, error) {
	setupLogger(cmd.ErrOrStderr(), o.verbose)

	format, err := report.ParseFormat(o.format)
	if err != nil {
		return nil, &ExitError{Code: ExitSchemaError, Err: err}
	}

	layout, err := config.ResolveLayout(o.module)
	if err != nil {
		return nil, &ExitError{Code: ExitSchemaError, Err: err}
	}

	cfg, err := config.Load(layout.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("load project config: %w", err)
	}

	moduleDir := layout.ModuleDir()
	if o.moduleDir != "" {
		if moduleDir, err = filepath.Abs(o.moduleDir); err != nil {
			return nil, fmt.Errorf("resolve module dir: %w", err)
		}
	}
	slog.Debug("resolved layout",
		"tool_dir", layout.ToolDir,
		"project_root", layout.ProjectRoot,
		"module_dir", moduleDir,
	)

	return &checkEnv{layout: layout, cfg: cfg, moduleDir: moduleDir, format: format}, nil
}

// emit renders rep on stdout unless quiet is set.
func (o *commonOptions) emit(cmd *cobra.Command, env *checkEnv, rep *report.Report) error {
	if o.quiet {
		return nil
	}
	out := cmd.OutOrStdout()
	return report.NewRenderer(out, env.format, noColor(out)).Render(rep)
}

func noColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return report.ColorDisabled(f)
}

// setupLogger installs a text slog handler on w as the default logger.
// Timestamps are dropped; diagnostics are read by people at a terminal.
func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}
