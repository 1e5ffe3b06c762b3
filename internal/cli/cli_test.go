package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/modu-ai/plancheck/internal/defs"
	"github.com/modu-ai/plancheck/internal/report"
)

// testProject is a project root with the tool directory at scripts/.
type testProject struct {
	root    string
	toolDir string
}

// newTestProject creates PROJECT_ROOT/{scripts/schema,module1} and points
// PLANCHECK_HOME at scripts/.
func newTestProject(t *testing.T) *testProject {
	t.Helper()
	root := t.TempDir()
	p := &testProject{root: root, toolDir: filepath.Join(root, "scripts")}
	for _, dir := range []string{filepath.Join(p.toolDir, defs.SchemaDir), filepath.Join(root, "module1")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv(defs.EnvHome, p.toolDir)
	return p
}

func (p *testProject) write(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(p.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return path
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	code := run(cmd)
	return code, stdout.String(), stderr.String()
}

func TestStructureMissingSection(t *testing.T) {
	p := newTestProject(t)
	p.write(t, "scripts/schema/module1.json", `{"a.md": ["Scope", "Risks"]}`)
	p.write(t, "module1/a.md", "## Scope\nWe build a linter.\nIt runs in CI.\n")

	code, stdout, _ := execute(t, NewRootCmd(), "structure")
	if code != ExitFindings {
		t.Errorf("exit code = %d, want %d", code, ExitFindings)
	}
	want := "File: a.md - Missing required section(s): Risks\n" +
		"  How to fix: add ## headings for each; see module1/templates/a.md or docs/FILL_GUIDES.md.\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestStructureQuietKeepsExitCode(t *testing.T) {
	p := newTestProject(t)
	p.write(t, "scripts/schema/module1.json", `{"a.md": ["Scope", "Risks"]}`)
	p.write(t, "module1/a.md", "## Scope\n")

	code, stdout, _ := execute(t, NewRootCmd(), "structure", "--quiet")
	if code != ExitFindings {
		t.Errorf("exit code = %d, want %d", code, ExitFindings)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty in quiet mode", stdout)
	}
}

func TestStructureAllPresent(t *testing.T) {
	p := newTestProject(t)
	p.write(t, "scripts/schema/module1.json", `{"a.md": ["Scope"]}`)
	p.write(t, "module1/a.md", "## Scope\nTODO\n")

	code, stdout, _ := execute(t, NewRootCmd(), "structure")
	if code != ExitOK {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestStructureVerboseListsSchemaDocuments(t *testing.T) {
	p := newTestProject(t)
	p.write(t, "scripts/schema/module1.json", `{"b.md": ["Goals"], "a.md": ["Scope"]}`)
	p.write(t, "module1/a.md", "## Scope\nDone.\n")
	p.write(t, "module1/b.md", "## Goals\nDone.\n")

	code, _, stderr := execute(t, NewRootCmd(), "structure", "--verbose")
	if code != ExitOK {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr, "loaded schema") || !strings.Contains(stderr, "[b.md a.md]") {
		t.Errorf("stderr = %q, want debug line listing schema documents in order", stderr)
	}
}

func TestStructureCheckEmpty(t *testing.T) {
	p := newTestProject(t)
	p.write(t, "scripts/schema/module1.json", `{"a.md": ["Scope"]}`)
	p.write(t, "module1/a.md", "## Scope\n<!-- describe scope -->\nTODO: write scope\n")

	code, stdout, _ := execute(t, NewRootCmd(), "structure", "--check-empty")
	if code != ExitFindings {
		t.Errorf("exit code = %d, want %d", code, ExitFindings)
	}
	if !strings.Contains(stdout, "File: a.md - Section(s) still only TODO/placeholder: Scope") {
		t.Errorf("stdout missing placeholder finding: %q", stdout)
	}
	if strings.Contains(stdout, "Missing required") {
		t.Errorf("heading is present and must not be reported missing: %q", stdout)
	}
}

func TestStructureSchemaNotFoundSkips(t *testing.T) {
	newTestProject(t)

	code, stdout, stderr := execute(t, NewRootCmd(), "structure", "--module", "4", "--quiet")
	if code != ExitOK {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "schema not found") || !strings.Contains(stderr, "module4.json") {
		t.Errorf("stderr = %q, want schema-not-found diagnostic", stderr)
	}
}

func TestStructureMalformedSchema(t *testing.T) {
	p := newTestProject(t)
	p.write(t, "scripts/schema/module1.json", `{"a.md": "Scope"}`)

	code, stdout, stderr := execute(t, NewRootCmd(), "structure", "--quiet")
	if code != ExitSchemaError {
		t.Errorf("exit code = %d, want %d", code, ExitSchemaError)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "schema error") {
		t.Errorf("stderr = %q, want schema error", stderr)
	}
}

func TestStructureUnreadableSchema(t *testing.T) {
	p := newTestProject(t)
	if err := os.Mkdir(filepath.Join(p.toolDir, defs.SchemaDir, "module1.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := execute(t, NewRootCmd(), "structure")
	if code != ExitSchemaError {
		t.Errorf("exit code = %d, want %d", code, ExitSchemaError)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "schema error") {
		t.Errorf("stderr = %q, want schema error", stderr)
	}
}

func TestStructureExplicitPaths(t *testing.T) {
	p := newTestProject(t)
	schema := p.write(t, "elsewhere/brief.yaml", "brief.md:\n  - Goals\n")
	p.write(t, "docs/brief.md", "## Goals\nShip it.\nOn time.\n")

	code, _, stderr := execute(t, newStructureCmd("check-structure"),
		"--module-dir", filepath.Join(p.root, "docs"),
		"--schema", schema,
		"--check-empty",
	)
	if code != ExitOK {
		t.Errorf("exit code = %d, want 0 (stderr %q)", code, stderr)
	}
}

func TestStructureJSONFormat(t *testing.T) {
	p := newTestProject(t)
	p.write(t, "scripts/schema/module1.json", `{"a.md": ["Scope"], "b.md": ["Plan"]}`)
	p.write(t, "module1/a.md", "## Scope\nok\nok\n")

	code, stdout, _ := execute(t, NewRootCmd(), "structure", "--format", "json")
	if code != ExitFindings {
		t.Errorf("exit code = %d, want %d", code, ExitFindings)
	}

	var rep report.Report
	if err := json.Unmarshal([]byte(stdout), &rep); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if rep.Check != "structure" || !rep.HasError || len(rep.Findings) != 1 {
		t.Fatalf("report = %+v", rep)
	}
	if f := rep.Findings[0]; f.File != "b.md" || f.Kind != report.KindMissingSection {
		t.Errorf("finding = %+v", f)
	}
}

func TestTraceOrphans(t *testing.T) {
	p := newTestProject(t)
	p.write(t, "module1/REQUIREMENTS_MATRIX.md", "| R1 | a |\n| R2 | b |\n| R3 | c |\n")
	p.write(t, "module1/VERIFICATION_PLAN.md", "T1 verifies R1\n")
	p.write(t, "module1/HIGH_PRIORITY_REQUIREMENTS_TRACEABILITY.md", "R2\n")

	code, stdout, _ := execute(t, NewRootCmd(), "trace")
	if code != ExitFindings {
		t.Errorf("exit code = %d, want %d", code, ExitFindings)
	}
	if !strings.Contains(stdout, "but not referenced in VERIFICATION_PLAN.md or HIGH_PRIORITY_REQUIREMENTS_TRACEABILITY.md: R3\n") {
		t.Errorf("stdout = %q", stdout)
	}
	if strings.Contains(stdout, "all requirement IDs") {
		t.Errorf("all-clear line printed despite orphans: %q", stdout)
	}
}

func TestTraceReportMissing(t *testing.T) {
	p := newTestProject(t)
	p.write(t, "module1/REQUIREMENTS_MATRIX.md", "R1\n")
	p.write(t, "module1/VERIFICATION_PLAN.md", "R1, R5\n")

	code, stdout, _ := execute(t, newTraceCmd("check-traceability"), "--report-missing")
	if code != ExitOK {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "Traceability (info):") || !strings.Contains(stdout, ": R5\n") {
		t.Errorf("stdout missing informational finding: %q", stdout)
	}
	if !strings.Contains(stdout, "Traceability: all requirement IDs in REQUIREMENTS_MATRIX.md are referenced") {
		t.Errorf("stdout missing all-clear line: %q", stdout)
	}
}

func TestTraceSkips(t *testing.T) {
	t.Run("no matrix", func(t *testing.T) {
		newTestProject(t)
		code, stdout, stderr := execute(t, NewRootCmd(), "trace", "--quiet")
		if code != ExitOK || stdout != "" {
			t.Errorf("code = %d stdout = %q", code, stdout)
		}
		if !strings.Contains(stderr, "REQUIREMENTS_MATRIX.md not found") {
			t.Errorf("stderr = %q", stderr)
		}
	})

	t.Run("matrix without ids", func(t *testing.T) {
		p := newTestProject(t)
		p.write(t, "module1/REQUIREMENTS_MATRIX.md", "# Requirements\n\nTBD\n")
		code, stdout, stderr := execute(t, NewRootCmd(), "trace")
		if code != ExitOK || stdout != "" {
			t.Errorf("code = %d stdout = %q", code, stdout)
		}
		if !strings.Contains(stderr, "no requirement IDs") {
			t.Errorf("stderr = %q", stderr)
		}
	})
}

func TestTraceProjectConfig(t *testing.T) {
	p := newTestProject(t)
	p.write(t, defs.ProjectConfigYAML, "traceability:\n  matrix: MATRIX.md\n  references: [TESTS.md]\n")
	p.write(t, "module1/MATRIX.md", "R1 R2\n")
	p.write(t, "module1/TESTS.md", "R1\n")

	code, stdout, _ := execute(t, NewRootCmd(), "trace", "--module-dir", filepath.Join(p.root, "module1"))
	if code != ExitFindings {
		t.Errorf("exit code = %d, want %d", code, ExitFindings)
	}
	if !strings.Contains(stdout, "in MATRIX.md but not referenced in TESTS.md: R2") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestUsageErrors(t *testing.T) {
	newTestProject(t)

	tests := [][]string{
		{"structure", "--no-such-flag"},
		{"trace", "--format", "xml"},
		{"trace", "--module", "0"},
	}
	for _, args := range tests {
		code, _, stderr := execute(t, NewRootCmd(), args...)
		if code != ExitSchemaError {
			t.Errorf("%v: exit code = %d, want %d", args, code, ExitSchemaError)
		}
		if !strings.HasPrefix(stderr, "Error: ") {
			t.Errorf("%v: stderr = %q", args, stderr)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errFindings, ExitFindings},
		{&ExitError{Code: ExitSchemaError, Err: errors.New("bad")}, ExitSchemaError},
		{errors.New("permission denied"), ExitFindings},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestReportErrorSkipsBareExitErrors(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{}
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	reportError(cmd, errFindings)
	if stderr.Len() != 0 {
		t.Errorf("reportError() wrote %q for a bare exit error", stderr.String())
	}
	reportError(cmd, errors.New("boom"))
	if stderr.String() != "Error: boom\n" {
		t.Errorf("reportError() wrote %q", stderr.String())
	}
}
