package structure

import (
	"strings"

	"github.com/modu-ai/plancheck/internal/config"
)

// PlaceholderRules decide whether a section body is still template filler.
type PlaceholderRules struct {
	// CommentPrefix marks lines that never count as content. Empty disables the check.
	CommentPrefix string
	// Markers disqualify any line that contains one of them.
	Markers []string
	// MaxSubstantiveLines is the largest content line count that is still a placeholder.
	MaxSubstantiveLines int
}

// DefaultPlaceholderRules returns the rules used when no project config overrides them.
func DefaultPlaceholderRules() PlaceholderRules {
	return RulesFromConfig(config.NewDefaultConfig().Structure.Placeholder)
}

// RulesFromConfig converts the placeholder section of the project config.
func RulesFromConfig(c config.PlaceholderConfig) PlaceholderRules {
	return PlaceholderRules{
		CommentPrefix:       c.CommentPrefix,
		Markers:             c.Markers,
		MaxSubstantiveLines: c.MaxSubstantiveLines,
	}
}

// SubstantiveLines counts the lines of body that are not blank, not
// comments and free of every marker.
func (r PlaceholderRules) SubstantiveLines(body string) int {
	n := 0
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.CommentPrefix != "" && strings.HasPrefix(line, r.CommentPrefix) {
			continue
		}
		if r.hasMarker(line) {
			continue
		}
		n++
	}
	return n
}

// IsPlaceholder reports whether body has at most MaxSubstantiveLines lines
// of real content. A single stray line is tolerated by default.
func (r PlaceholderRules) IsPlaceholder(body string) bool {
	return r.SubstantiveLines(body) <= r.MaxSubstantiveLines
}

func (r PlaceholderRules) hasMarker(line string) bool {
	for _, m := range r.Markers {
		if m != "" && strings.Contains(line, m) {
			return true
		}
	}
	return false
}
