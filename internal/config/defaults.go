package config

import (
	"slices"

	"github.com/modu-ai/plancheck/internal/defs"
)

// Default value constants.
const (
	DefaultModule              = 1
	DefaultCommentPrefix       = "<!--"
	DefaultMaxSubstantiveLines = 1
)

// DefaultMarkers are the substrings that flag template filler lines.
var DefaultMarkers = []string{"TODO", "How to fill"}

// DefaultReferences are the documents expected to cite matrix requirement IDs.
var DefaultReferences = []string{defs.VerificationPlanMD, defs.HighPriorityTraceabilityMD}

// NewDefaultConfig returns a Config with every field set to its default.
func NewDefaultConfig() *Config {
	return &Config{
		Structure: StructureConfig{
			SchemaDir: defs.SchemaDir,
			Placeholder: PlaceholderConfig{
				CommentPrefix:       DefaultCommentPrefix,
				Markers:             slices.Clone(DefaultMarkers),
				MaxSubstantiveLines: DefaultMaxSubstantiveLines,
			},
		},
		Traceability: TraceabilityConfig{
			Matrix:     defs.RequirementsMatrixMD,
			References: slices.Clone(DefaultReferences),
		},
	}
}
