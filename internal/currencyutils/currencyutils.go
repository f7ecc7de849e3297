// Package currencyutils normalizes the monetary notations found in bank
// statements and formats amounts for display.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/pdf-csv/internal/parsererror"
)

var (
	glyphRe = regexp.MustCompile(`[€$£¥]`)
	// European convention: optional sign, dot-grouped thousands, comma and
	// exactly two fraction digits (1.234,56).
	europeanRe = regexp.MustCompile(`^[-+]?\d{1,3}(?:\.\d{3})*,\d{2}$`)
	// Anglo convention: comma-grouped thousands, dot decimal (1,234.56).
	angloRe = regexp.MustCompile(`^[-+]?\d{1,3}(?:,\d{3})*\.\d{2}$`)
	looseRe = regexp.MustCompile(`[^\d.\-+]`)
)

// ParseAmount parses a raw amount string into a signed decimal. Empty input
// yields zero. Parenthesized amounts and leading or trailing minus signs all
// mean negative. Both the European (1.234,56) and Anglo (1,234.56)
// conventions are recognized before falling back to a loose numeric parse.
// Failure returns a *parsererror.AmountParseError carrying the raw text.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	s = strings.TrimSpace(glyphRe.ReplaceAllString(s, ""))

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + strings.TrimSpace(s[1:len(s)-1])
	}

	// Trailing minus notation (50,00-) means negative.
	if strings.HasSuffix(s, "-") && !strings.HasPrefix(s, "-") {
		s = "-" + strings.TrimSuffix(s, "-")
	}

	switch {
	case europeanRe.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case angloRe.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ",", ".")
		s = looseRe.ReplaceAllString(s, "")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &parsererror.AmountParseError{Raw: raw, Err: err}
	}
	return amount, nil
}

// FormatAmount renders an amount with two decimal places, thousands grouping
// and currency-specific symbol placement: "1,234.56 €", "$1,234.56",
// "£1,234.56" and "1,234.56 CUR" for everything else.
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := groupThousands(amount.StringFixed(2))

	switch strings.ToUpper(currency) {
	case "EUR":
		return formatted + " €"
	case "USD":
		return "$" + formatted
	case "GBP":
		return "£" + formatted
	default:
		return fmt.Sprintf("%s %s", formatted, currency)
	}
}

// groupThousands inserts comma separators into the integer part of a plain
// decimal string, preserving sign and fraction.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String() + fracPart
}

// DetectCurrency sniffs the document currency from marker strings, falling
// back to EUR. A bare dollar sign reads as USD here; Argentinian parsers
// override that via their currency hint because in Argentina "$" means pesos.
func DetectCurrency(text string) string {
	upper := strings.ToUpper(text)
	switch {
	case containsAny(upper, "USD", "$", "DOLLAR"):
		return "USD"
	case containsAny(upper, "GBP", "£", "POUND"):
		return "GBP"
	case containsAny(upper, "ARS", "AR$", "PESO"):
		return "ARS"
	default:
		return "EUR"
	}
}

func containsAny(s string, markers ...string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
