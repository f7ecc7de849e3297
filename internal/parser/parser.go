// Package parser defines the contract every bank-specific parser implements
// and the registry that resolves which parser handles a document.
package parser

import "fjacquet/pdf-csv/internal/models"

// Parser is the capability every bank parser exposes: a unique identifier
// with optional aliases, content sniffing, and extraction of raw transaction
// fragments from already-extracted statement text. Normalization and
// categorization happen downstream in the pipeline.
type Parser interface {
	// ID returns the unique bank identifier for this parser.
	ID() string

	// Aliases returns alternative identifiers resolving to this parser.
	Aliases() []string

	// CanHandle reports whether this parser recognizes the document text.
	CanHandle(text string) bool

	// Extract produces the raw transaction fragments found in the text.
	// An empty slice with a nil error means the document held no
	// recognizable transactions.
	Extract(text string) ([]models.Fragment, error)
}

// CurrencyHinter is an optional capability for parsers whose region needs a
// different document-currency heuristic than the default (e.g. Argentinian
// statements, where a bare "$" means pesos).
type CurrencyHinter interface {
	CurrencyHint(text string) string
}
