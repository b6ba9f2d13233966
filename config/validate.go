package config

import (
	"fmt"
	"strings"
)

// Violation describes a single configuration value that failed a fatal
// validation check.
type Violation struct {
	Field  string
	Value  any
	Reason string
}

func (v Violation) String() string {
	return fmt.Sprintf("invalid %s '%v': %s", v.Field, v.Value, v.Reason)
}

// ValidationError aggregates every fatal violation found in one pass so a
// bad configuration file can be fixed in a single edit.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("configuration validation failed:")
	for _, violation := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(violation.String())
	}
	return b.String()
}

// validate checks the decoded settings against the schema constraints.
// It returns all fatal violations at once, plus the advisory notes that
// are surfaced only in verbose mode. Advisories never fail resolution.
func validate(s *Settings) ([]string, *ValidationError) {
	var violations []Violation
	var advisories []string

	switch s.Build.Precision {
	case PrecisionDouble, PrecisionSingle:
	default:
		violations = append(violations, Violation{
			Field:  "precision",
			Value:  s.Build.Precision,
			Reason: "must be 'double' or 'single'",
		})
	}

	switch s.Build.Numbers {
	case NumbersComplex, NumbersReal:
	default:
		violations = append(violations, Violation{
			Field:  "numbers",
			Value:  s.Build.Numbers,
			Reason: "must be 'complex' or 'real'",
		})
	}

	switch s.Build.DefaultFileFormat {
	case FileFormatHDF5, FileFormatFstream:
	default:
		violations = append(violations, Violation{
			Field:  "default_file_format",
			Value:  s.Build.DefaultFileFormat,
			Reason: "must be 'hdf5' or 'fstream'",
		})
	}

	if s.Build.BuildJobs < 0 {
		violations = append(violations, Violation{
			Field:  "build_jobs",
			Value:  s.Build.BuildJobs,
			Reason: "must be a non-negative integer",
		})
	}

	if s.Build.EnableMinuit && s.Libraries.Minuit2.IncludeDir == "" && s.Libraries.Minuit2.LibraryDir == "" {
		advisories = append(advisories,
			"Minuit2 is enabled but no library paths specified. Auto-detection will be attempted.")
	}
	if s.Build.EnableGrace && s.Libraries.Grace.IncludeDir == "" && s.Libraries.Grace.LibraryDir == "" {
		advisories = append(advisories,
			"Grace is enabled but no library paths specified. Auto-detection will be attempted.")
	}
	if s.Build.SkipQuery && s.Build.SkipBatch {
		advisories = append(advisories,
			"Both executables are disabled - only Python bindings will be built.")
	}

	if len(violations) > 0 {
		return advisories, &ValidationError{Violations: violations}
	}
	return advisories, nil
}
