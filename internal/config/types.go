package config

// Config is the root of the .plancheck.yaml project file.
type Config struct {
	Structure    StructureConfig    `yaml:"structure"`
	Traceability TraceabilityConfig `yaml:"traceability"`
}

// StructureConfig configures the required-section check.
type StructureConfig struct {
	// SchemaDir is resolved relative to the tool directory.
	SchemaDir   string            `yaml:"schema_dir"`
	Placeholder PlaceholderConfig `yaml:"placeholder"`
}

// PlaceholderConfig controls how section bodies are classified as unfilled.
type PlaceholderConfig struct {
	// CommentPrefix marks lines that never count as content.
	CommentPrefix string `yaml:"comment_prefix"`
	// Markers disqualify any line containing one of them.
	Markers []string `yaml:"markers"`
	// MaxSubstantiveLines is the largest content line count still treated as a placeholder.
	MaxSubstantiveLines int `yaml:"max_substantive_lines"`
}

// TraceabilityConfig names the documents the requirement-ID check reads.
type TraceabilityConfig struct {
	Matrix     string   `yaml:"matrix"`
	References []string `yaml:"references"`
}
