package structure

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/modu-ai/plancheck/internal/document"
)

// Options control a structure check run.
type Options struct {
	// CheckEmpty enables placeholder detection for required sections.
	CheckEmpty bool
	Rules      PlaceholderRules
}

// FileResult holds the findings for one schema entry.
type FileResult struct {
	Filename string
	Exists   bool
	// Missing lists required headings absent from the document, in schema order.
	Missing []string
	// Placeholders lists required, present headings whose body is still filler.
	Placeholders []string
}

// HasFindings reports whether the result should fail the run.
func (r FileResult) HasFindings(checkEmpty bool) bool {
	return len(r.Missing) > 0 || (checkEmpty && len(r.Placeholders) > 0)
}

// Summary aggregates the results of every schema entry.
type Summary struct {
	Files    []FileResult
	HasError bool
}

// CheckFile checks one document against its required headings. A document
// that does not exist reports every required heading as missing and is not
// analysed further.
func CheckFile(moduleDir, filename string, required []string, opts Options) (FileResult, error) {
	result := FileResult{Filename: filename}

	text, ok, err := document.Read(filepath.Join(moduleDir, filename))
	if err != nil {
		return result, err
	}
	if !ok {
		result.Missing = slices.Clone(required)
		return result, nil
	}
	result.Exists = true

	found := make(map[string]struct{})
	for _, h := range ExtractHeadings(text) {
		found[h] = struct{}{}
	}
	for _, req := range required {
		if _, ok := found[req]; !ok {
			result.Missing = append(result.Missing, req)
		}
	}

	if opts.CheckEmpty {
		result.Placeholders = placeholderSections(text, required, opts.Rules)
	}
	return result, nil
}

// placeholderSections returns, once each and in document order, the required
// headings whose body is classified as a placeholder.
func placeholderSections(text string, required []string, rules PlaceholderRules) []string {
	var out []string
	for _, sec := range SplitSections(text) {
		if !slices.Contains(required, sec.Title) || slices.Contains(out, sec.Title) {
			continue
		}
		if rules.IsPlaceholder(sec.Body) {
			out = append(out, sec.Title)
		}
	}
	return out
}

// Check runs CheckFile for every schema entry in order. Documents not named
// by the schema are never read.
func Check(moduleDir string, schema Schema, opts Options) (Summary, error) {
	var summary Summary
	for _, entry := range schema {
		res, err := CheckFile(moduleDir, entry.Filename, entry.Headings, opts)
		if err != nil {
			return summary, fmt.Errorf("check %s: %w", entry.Filename, err)
		}
		slog.Debug("checked document",
			"file", entry.Filename,
			"exists", res.Exists,
			"missing", len(res.Missing),
			"placeholders", len(res.Placeholders),
		)
		if res.HasFindings(opts.CheckEmpty) {
			summary.HasError = true
		}
		summary.Files = append(summary.Files, res)
	}
	return summary, nil
}
