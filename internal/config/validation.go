package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for correctness. It returns FieldErrors
// naming every invalid setting, or nil.
func Validate(cfg *Config) error {
	var errs FieldErrors
	errs = append(errs, validateStructure(&cfg.Structure)...)
	errs = append(errs, validateTraceability(&cfg.Traceability)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateStructure(s *StructureConfig) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(s.SchemaDir) == "" {
		errs = append(errs, FieldError{Key: "structure.schema_dir", Reason: "must not be empty"})
	}
	if n := s.Placeholder.MaxSubstantiveLines; n < 0 {
		errs = append(errs, FieldError{
			Key:    "structure.placeholder.max_substantive_lines",
			Reason: "must be >= 0",
			Got:    fmt.Sprint(n),
		})
	}
	for i, m := range s.Placeholder.Markers {
		if strings.TrimSpace(m) == "" {
			// A blank marker is a substring of every line.
			errs = append(errs, FieldError{
				Key:    fmt.Sprintf("structure.placeholder.markers[%d]", i),
				Reason: "must not be blank",
			})
		}
	}
	return errs
}

func validateTraceability(t *TraceabilityConfig) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(t.Matrix) == "" {
		errs = append(errs, FieldError{Key: "traceability.matrix", Reason: "must name the requirements matrix document"})
	}
	if len(t.References) == 0 {
		errs = append(errs, FieldError{Key: "traceability.references", Reason: "at least one referencing document is required"})
	}
	for i, ref := range t.References {
		key := fmt.Sprintf("traceability.references[%d]", i)
		switch {
		case strings.TrimSpace(ref) == "":
			errs = append(errs, FieldError{Key: key, Reason: "must not be empty"})
		case ref == t.Matrix:
			errs = append(errs, FieldError{Key: key, Reason: "must differ from the matrix document", Got: ref})
		}
	}
	return errs
}
