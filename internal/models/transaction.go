// Package models provides the data structures shared by the parsers, the
// pipeline and the exporters.
package models

import "github.com/shopspring/decimal"

// Transaction represents one normalized ledger entry. Instances live for the
// duration of a single conversion request; there is no persistence layer.
type Transaction struct {
	Date          string          `csv:"Date"`        // Canonical YYYY-MM-DD, empty only when undated records are kept
	Description   string          `csv:"Description"` // Cleaned free text
	Amount        decimal.Decimal `csv:"Amount"`      // Signed amount in the statement currency
	Currency      string          `csv:"Currency"`    // ISO code (EUR, USD, GBP, ARS, ...)
	Category      string          `csv:"Category"`    // Always one of the categorizer labels
	AccountNumber string          `csv:"Account"`     // Document-level, may be empty
	SourceBank    string          `csv:"Bank"`        // Identifier of the resolved parser
	Balance       string          `csv:"Balance"`     // Raw running balance when the statement carries one
	Type          string          `csv:"Type"`        // Credit, Debit or Neutral
}

// Transaction types derived from the amount sign.
const (
	TypeCredit  = "Credit"
	TypeDebit   = "Debit"
	TypeNeutral = "Neutral"
)

// TypeForAmount returns the transaction type for a signed amount.
func TypeForAmount(amount decimal.Decimal) string {
	switch {
	case amount.IsPositive():
		return TypeCredit
	case amount.IsNegative():
		return TypeDebit
	default:
		return TypeNeutral
	}
}

// InputFile is one uploaded document: a filename, its raw bytes and an
// optional explicit bank-identifier hint.
type InputFile struct {
	Name     string
	Data     []byte
	BankHint string
}

// Fragment is a raw, not-yet-normalized transaction produced by a bank
// parser. All fields are verbatim slices of the statement text. Negate
// carries a section-derived sign hint (e.g. a withdrawals section where
// amounts print unsigned).
type Fragment struct {
	RawDate        string
	RawDescription string
	RawAmount      string
	RawBalance     string
	Negate         bool
}
