// Package parsererror defines the typed errors produced by the conversion
// core. Every error is a readable message identifying the offending file and,
// where applicable, the offending raw fragment.
package parsererror

import "fmt"

// ValidationError represents a batch- or file-level validation failure.
type ValidationError struct {
	File   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.File, e.Reason)
}

// UnresolvedBankError indicates that no registered parser matched a document,
// neither by explicit hint nor by content sniffing.
type UnresolvedBankError struct {
	File string
	Hint string
}

func (e *UnresolvedBankError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("no parser matched %s (bank hint %q)", e.File, e.Hint)
	}
	return fmt.Sprintf("no parser matched %s", e.File)
}

// AmountParseError indicates that a raw amount fragment contained no
// recognizable numeric pattern. Raw carries the original text verbatim.
type AmountParseError struct {
	Raw string
	Err error
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("cannot parse amount %q: %v", e.Raw, e.Err)
}

func (e *AmountParseError) Unwrap() error {
	return e.Err
}

// DateError indicates that a raw date fragment matched none of the accepted
// formats. This is a soft failure: callers decide whether to drop the record
// or emit it without a date.
type DateError struct {
	Raw string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("cannot parse date %q", e.Raw)
}

// ExtractionError represents a text-extraction failure, e.g. an encrypted or
// corrupt PDF. It is distinguishable from an empty document.
type ExtractionError struct {
	File   string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text extraction failed for %s: %s: %v", e.File, e.Reason, e.Err)
	}
	return fmt.Sprintf("text extraction failed for %s: %s", e.File, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// RegistrationError indicates a duplicate parser identifier or alias at
// registry construction time.
type RegistrationError struct {
	ID       string
	Conflict string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("parser %q: identifier or alias %q already registered", e.ID, e.Conflict)
}
