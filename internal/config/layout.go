package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/modu-ai/plancheck/internal/defs"
)

// Layout locates the tool, the project root and one module inside it.
// The project root is the parent of the tool directory.
type Layout struct {
	ToolDir     string
	ProjectRoot string
	Module      int
}

// ResolveLayout builds the Layout for module. The tool directory is taken from
// $PLANCHECK_HOME when set, otherwise from the running executable.
func ResolveLayout(module int) (Layout, error) {
	if module < 1 {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidModule, module)
	}

	toolDir, err := toolDir()
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		ToolDir:     toolDir,
		ProjectRoot: filepath.Dir(toolDir),
		Module:      module,
	}, nil
}

// ModuleName returns the directory and schema base name, e.g. "module1".
func (l Layout) ModuleName() string {
	return defs.ModulePrefix + strconv.Itoa(l.Module)
}

// ModuleDir returns the default document root for the module.
func (l Layout) ModuleDir() string {
	return filepath.Join(l.ProjectRoot, l.ModuleName())
}

// SchemaPath returns the default schema location for the module.
func (l Layout) SchemaPath(schemaDir string) string {
	if filepath.IsAbs(schemaDir) {
		return filepath.Join(schemaDir, l.ModuleName()+".json")
	}
	return filepath.Join(l.ToolDir, schemaDir, l.ModuleName()+".json")
}

func toolDir() (string, error) {
	if home := envOr(defs.EnvHome, ""); home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrToolDir, err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrToolDir, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
