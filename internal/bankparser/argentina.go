package bankparser

import (
	"regexp"
	"strings"

	"fjacquet/pdf-csv/internal/models"
)

// argentinianCurrencyHint resolves the document currency for Argentinian
// statements. A bare "$" means pesos there, so only explicit dollar markers
// yield USD and everything else defaults to ARS.
func argentinianCurrencyHint(text string) string {
	upper := strings.ToUpper(text)
	for _, marker := range []string{"USD", "U$S", "U$"} {
		if strings.Contains(upper, marker) {
			return "USD"
		}
	}
	return "ARS"
}

// ArgentinianParser is the generic parser for Argentinian bank statements.
// The table layout matches the Spanish one; only the currency heuristic
// differs.
type ArgentinianParser struct {
	SpanishParser
}

// NewArgentinian creates the generic Argentinian parser.
func NewArgentinian() *ArgentinianParser {
	return &ArgentinianParser{SpanishParser{
		id:       "generic_argentinian",
		aliases:  []string{"argentina"},
		sniffers: []string{"argentina", "cuit"},
	}}
}

// CurrencyHint implements parser.CurrencyHinter.
func (p *ArgentinianParser) CurrencyHint(text string) string {
	return argentinianCurrencyHint(text)
}

// galiciaLineRe matches Banco Galicia movement lines: two-digit-year date,
// description, signed amount and running balance, anchored at line start.
var galiciaLineRe = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{2})\s+(.+?)\s+([+-]?\d{1,3}(?:\.\d{3})*,\d{2})\s+([+-]?\d{1,3}(?:\.\d{3})*,\d{2})`)

// GaliciaParser handles Banco Galicia (Argentina) statements.
type GaliciaParser struct {
	ArgentinianParser
}

// NewGalicia creates the Galicia parser.
func NewGalicia() *GaliciaParser {
	return &GaliciaParser{ArgentinianParser{SpanishParser{
		id:       "galicia",
		sniffers: []string{"banco galicia", "banco de galicia"},
	}}}
}

// Extract scans with the Galicia line shape and falls back to the generic
// Spanish patterns when nothing matches.
func (p *GaliciaParser) Extract(text string) ([]models.Fragment, error) {
	fragments := scanLines(text, []*regexp.Regexp{galiciaLineRe})
	if len(fragments) > 0 {
		return fragments, nil
	}
	return p.ArgentinianParser.Extract(text)
}
