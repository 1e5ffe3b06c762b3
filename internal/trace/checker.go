package trace

import (
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/modu-ai/plancheck/internal/config"
	"github.com/modu-ai/plancheck/internal/document"
)

// SkipReason explains why a check produced no findings without running.
type SkipReason string

const (
	// SkipNone means the check ran.
	SkipNone SkipReason = ""
	// SkipNoMatrix means the matrix document does not exist.
	SkipNoMatrix SkipReason = "matrix-not-found"
	// SkipNoIDs means the matrix declares no requirement IDs.
	SkipNoIDs SkipReason = "no-requirement-ids"
)

// Documents names the files read from the module directory.
type Documents struct {
	Matrix     string
	References []string
}

// DocumentsFromConfig converts the traceability section of the project config.
func DocumentsFromConfig(c config.TraceabilityConfig) Documents {
	return Documents{Matrix: c.Matrix, References: slices.Clone(c.References)}
}

// DefaultDocuments returns the matrix, verification plan and high-priority
// traceability document names.
func DefaultDocuments() Documents {
	return DocumentsFromConfig(config.NewDefaultConfig().Traceability)
}

// Options control a traceability check run.
type Options struct {
	Documents Documents
	// ReportMissing also computes IDs referenced elsewhere but absent from the matrix.
	ReportMissing bool
}

// Result is the outcome of a traceability check.
type Result struct {
	Documents Documents
	Skipped   SkipReason

	MatrixIDs     IDSet
	ReferencedIDs IDSet

	// Orphans are matrix IDs no reference document mentions.
	Orphans []string
	// Missing are referenced IDs the matrix does not declare. Only set when
	// Options.ReportMissing is true; never affects HasError.
	Missing []string
	// Traced are matrix IDs that are referenced.
	Traced []string
}

// HasError reports whether the run should fail. Only orphans count.
func (r Result) HasError() bool {
	return len(r.Orphans) > 0
}

// Check reads the matrix and reference documents from moduleDir and diffs
// their requirement IDs. An absent matrix, or one without IDs, skips the
// check. Absent reference documents contribute no IDs.
func Check(moduleDir string, opts Options) (Result, error) {
	result := Result{Documents: opts.Documents}

	matrixText, ok, err := document.Read(filepath.Join(moduleDir, opts.Documents.Matrix))
	if err != nil {
		return result, err
	}
	if !ok {
		result.Skipped = SkipNoMatrix
		return result, nil
	}

	result.MatrixIDs = ExtractIDs(matrixText)
	if len(result.MatrixIDs) == 0 {
		result.Skipped = SkipNoIDs
		return result, nil
	}

	referenced := make(IDSet)
	for _, name := range opts.Documents.References {
		text, ok, err := document.Read(filepath.Join(moduleDir, name))
		if err != nil {
			return result, err
		}
		if !ok {
			slog.Debug("reference document not found", "file", name)
			continue
		}
		referenced = referenced.Union(ExtractIDs(text))
	}
	result.ReferencedIDs = referenced

	result.Orphans = result.MatrixIDs.Minus(referenced).Sorted()
	result.Traced = result.MatrixIDs.Intersect(referenced).Sorted()
	if opts.ReportMissing {
		result.Missing = referenced.Minus(result.MatrixIDs).Sorted()
	}

	slog.Debug("traceability checked",
		"matrix_ids", len(result.MatrixIDs),
		"referenced_ids", len(referenced),
		"orphans", len(result.Orphans),
	)
	return result, nil
}
