package defs

// Planning document names inspected by the traceability check.
const (
	// RequirementsMatrixMD declares every tracked requirement ID.
	RequirementsMatrixMD = "REQUIREMENTS_MATRIX.md"

	// VerificationPlanMD references requirement IDs from test catalogues and risk tables.
	VerificationPlanMD = "VERIFICATION_PLAN.md"

	// HighPriorityTraceabilityMD maps high-priority requirements to verification evidence.
	HighPriorityTraceabilityMD = "HIGH_PRIORITY_REQUIREMENTS_TRACEABILITY.md"

	// FillGuidesMD is the project-level guide referenced from remediation hints.
	FillGuidesMD = "docs/FILL_GUIDES.md"
)

// Directory and file names that make up a project layout.
const (
	// SchemaDir holds per-module structure schemas next to the tool.
	SchemaDir = "schema"

	// TemplatesDir holds blank document templates inside a module.
	TemplatesDir = "templates"

	// SolutionsDir holds worked examples inside a module.
	SolutionsDir = ".solutions"

	// ProjectConfigYAML is the optional project configuration file.
	ProjectConfigYAML = ".plancheck.yaml"

	// ModulePrefix prefixes the module number in directory and schema names.
	ModulePrefix = "module"
)

// Environment variables.
const (
	// EnvHome overrides the directory the tool resolves its schema and project root from.
	EnvHome = "PLANCHECK_HOME"

	// EnvNoColor disables colored output when set to any value.
	EnvNoColor = "NO_COLOR"
)
