// Package report turns checker results into human-readable findings and
// renders them as text or JSON.
package report

import (
	"fmt"
	"path"
	"strings"

	"github.com/modu-ai/plancheck/internal/defs"
	"github.com/modu-ai/plancheck/internal/structure"
	"github.com/modu-ai/plancheck/internal/trace"
)

// Kind classifies a finding.
type Kind string

const (
	// KindMissingSection lists required headings absent from a document,
	// or every required heading when the document itself is absent.
	KindMissingSection Kind = "missing-section"
	// KindPlaceholderSection lists required sections that hold only filler.
	KindPlaceholderSection Kind = "placeholder-section"
	// KindOrphanID lists matrix IDs no reference document mentions.
	KindOrphanID Kind = "orphan-id"
	// KindMissingID lists IDs referenced downstream but absent from the
	// matrix. It is informational.
	KindMissingID Kind = "missing-id"
	// KindAllClear states that every matrix ID is traced.
	KindAllClear Kind = "all-clear"
)

// Failing reports whether findings of this kind fail the run.
func (k Kind) Failing() bool {
	switch k {
	case KindMissingSection, KindPlaceholderSection, KindOrphanID:
		return true
	default:
		return false
	}
}

// Finding is one reportable line plus its remediation hint.
type Finding struct {
	Kind    Kind     `json:"kind"`
	File    string   `json:"file,omitempty"`
	Items   []string `json:"items,omitempty"`
	Summary string   `json:"summary"`
	Hint    string   `json:"hint,omitempty"`
}

// Report is the transient result of one check run.
type Report struct {
	Check    string    `json:"check"`
	Skipped  string    `json:"skipped,omitempty"`
	HasError bool      `json:"has_error"`
	Findings []Finding `json:"findings"`
}

// Add appends f and raises HasError for failing kinds.
func (r *Report) Add(f Finding) {
	r.Findings = append(r.Findings, f)
	if f.Kind.Failing() {
		r.HasError = true
	}
}

// FromStructure builds the report for a structure check. moduleName is used
// in remediation hints, e.g. "module1".
func FromStructure(sum structure.Summary, moduleName string, checkEmpty bool) *Report {
	rep := &Report{Check: "structure", Findings: []Finding{}}
	for _, f := range sum.Files {
		if len(f.Missing) > 0 {
			rep.Add(Finding{
				Kind:    KindMissingSection,
				File:    f.Filename,
				Items:   f.Missing,
				Summary: fmt.Sprintf("File: %s - Missing required section(s): %s", f.Filename, strings.Join(f.Missing, ", ")),
				Hint: fmt.Sprintf("How to fix: add ## headings for each; see %s or %s.",
					path.Join(moduleName, defs.TemplatesDir, f.Filename), defs.FillGuidesMD),
			})
		}
		if checkEmpty && len(f.Placeholders) > 0 {
			rep.Add(Finding{
				Kind:    KindPlaceholderSection,
				File:    f.Filename,
				Items:   f.Placeholders,
				Summary: fmt.Sprintf("File: %s - Section(s) still only TODO/placeholder: %s", f.Filename, strings.Join(f.Placeholders, ", ")),
				Hint: fmt.Sprintf("How to fix: replace placeholder with real content; see %s.",
					path.Join(moduleName, defs.SolutionsDir, f.Filename)),
			})
		}
	}
	return rep
}

// FromTrace builds the report for a traceability check. A skipped result
// yields no findings.
func FromTrace(res trace.Result, moduleName string) *Report {
	rep := &Report{Check: "traceability", Skipped: string(res.Skipped), Findings: []Finding{}}
	if res.Skipped != trace.SkipNone {
		return rep
	}

	matrix := res.Documents.Matrix
	refs := strings.Join(res.Documents.References, " or ")

	if len(res.Orphans) > 0 {
		rep.Add(Finding{
			Kind:    KindOrphanID,
			File:    matrix,
			Items:   res.Orphans,
			Summary: fmt.Sprintf("Traceability: requirement(s) in %s but not referenced in %s: %s", matrix, refs, strings.Join(res.Orphans, ", ")),
			Hint: fmt.Sprintf("How to fix: reference these Req IDs in %s (e.g. test catalogue, risk table). See %s/ for examples.",
				refs, path.Join(moduleName, defs.SolutionsDir)),
		})
	}
	if len(res.Missing) > 0 {
		rep.Add(Finding{
			Kind:    KindMissingID,
			Items:   res.Missing,
			Summary: fmt.Sprintf("Traceability (info): ID(s) referenced in %s but not in %s: %s", refs, matrix, strings.Join(res.Missing, ", ")),
			Hint:    fmt.Sprintf("Suggestion: add these to the Requirement List in %s, or remove the references.", matrix),
		})
	}
	if !rep.HasError {
		rep.Add(Finding{
			Kind:    KindAllClear,
			Summary: fmt.Sprintf("Traceability: all requirement IDs in %s are referenced in %s.", matrix, refs),
		})
	}
	return rep
}
