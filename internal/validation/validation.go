// Package validation applies the upload policy to a batch of documents
// before any parsing begins.
package validation

import (
	"fmt"
	"strings"

	"fjacquet/pdf-csv/internal/models"
)

// Default upload limits.
const (
	DefaultMaxFiles      = 10
	DefaultMaxFileSizeMB = 50
)

// Limits configures the upload policy.
type Limits struct {
	MaxFiles      int
	MaxFileSizeMB int
}

// DefaultLimits returns the standard upload policy.
func DefaultLimits() Limits {
	return Limits{
		MaxFiles:      DefaultMaxFiles,
		MaxFileSizeMB: DefaultMaxFileSizeMB,
	}
}

// Result is the outcome of validating a batch. Batch-level errors and
// per-file errors are kept apart so a failure is never attributed to the
// wrong file.
type Result struct {
	BatchErrors []string
	FileErrors  map[string][]string
}

// Valid reports whether the batch passed every rule.
func (r Result) Valid() bool {
	return len(r.BatchErrors) == 0 && len(r.FileErrors) == 0
}

// FileInvalid reports whether a specific file failed a per-file rule.
// Batch-level errors (too many files) do not mark individual files invalid.
func (r Result) FileInvalid(name string) bool {
	return len(r.FileErrors[name]) > 0
}

// Errors flattens every error in the result, batch-level first. Per-file
// ordering follows map iteration and is not guaranteed.
func (r Result) Errors() []string {
	all := append([]string{}, r.BatchErrors...)
	for _, errs := range r.FileErrors {
		all = append(all, errs...)
	}
	return all
}

// ValidateFiles checks a batch against the upload policy. All rules are
// evaluated and errors accumulated: an over-large batch yields one batch
// error, a non-PDF filename and an over-size file each yield an error keyed
// by the offending file. Callers may still parse files that passed their
// per-file rules.
func ValidateFiles(files []models.InputFile, limits Limits) Result {
	result := Result{FileErrors: make(map[string][]string)}

	if limits.MaxFiles > 0 && len(files) > limits.MaxFiles {
		result.BatchErrors = append(result.BatchErrors, fmt.Sprintf(
			"Too many files uploaded. Maximum allowed: %d", limits.MaxFiles))
	}

	for _, file := range files {
		if !strings.HasSuffix(strings.ToLower(file.Name), ".pdf") {
			result.FileErrors[file.Name] = append(result.FileErrors[file.Name], fmt.Sprintf(
				"Invalid file type for %s. Only PDF files are allowed.", file.Name))
			continue
		}

		sizeMB := float64(len(file.Data)) / (1024 * 1024)
		if limits.MaxFileSizeMB > 0 && sizeMB > float64(limits.MaxFileSizeMB) {
			result.FileErrors[file.Name] = append(result.FileErrors[file.Name], fmt.Sprintf(
				"File %s is too large (%.1fMB). Maximum allowed: %dMB",
				file.Name, sizeMB, limits.MaxFileSizeMB))
		}
	}

	return result
}
