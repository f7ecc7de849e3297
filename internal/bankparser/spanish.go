package bankparser

import (
	"regexp"
	"strings"

	"fjacquet/pdf-csv/internal/models"
	"fjacquet/pdf-csv/internal/textutils"
)

// spanishPatterns are the line shapes of most Spanish statement tables:
// date, description, amount and an optional running balance, with European
// decimal commas. The thousand-aware pattern runs before the simple one so
// "1.200,00" is never truncated to "1.20".
var spanishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\s+(.+?)\s+([-+]?\d+[.,]\d{2})\s+([-+]?\d+[.,]\d{2})`),
	regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\s+(.+?)\s+([-+]?\d{1,3}(?:\.\d{3})*,\d{2})`),
	regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\s+(.+?)\s+([-+]?\d+[.,]\d{2})`),
}

// SpanishParser is the generic parser for Spanish bank statements. Named
// banks with the same table layout register as aliases instead of carrying
// their own implementation.
type SpanishParser struct {
	id       string
	aliases  []string
	sniffers []string
}

// NewSpanish creates the generic Spanish parser.
func NewSpanish() *SpanishParser {
	return &SpanishParser{
		id:      "generic_spanish",
		aliases: []string{"bankia", "sabadell", "unicaja", "kutxabank", "ibercaja"},
		sniffers: []string{
			"número de cuenta", "numero de cuenta", "fecha valor", "saldo anterior", "extracto",
		},
	}
}

// ID returns the bank identifier.
func (p *SpanishParser) ID() string { return p.id }

// Aliases returns alternative identifiers for this parser.
func (p *SpanishParser) Aliases() []string { return p.aliases }

// CanHandle sniffs for Spanish statement vocabulary.
func (p *SpanishParser) CanHandle(text string) bool {
	return containsAny(strings.ToLower(text), p.sniffers...)
}

// Extract scans the statement lines with the generic Spanish patterns.
func (p *SpanishParser) Extract(text string) ([]models.Fragment, error) {
	return scanLines(text, spanishPatterns), nil
}

// NewBBVA creates the BBVA parser. BBVA statements use the generic Spanish
// table layout.
func NewBBVA() *SpanishParser {
	return &SpanishParser{
		id:       "bbva",
		sniffers: []string{"bbva"},
	}
}

// NewCaixaBank creates the CaixaBank parser, also on the generic layout.
func NewCaixaBank() *SpanishParser {
	return &SpanishParser{
		id:       "caixabank",
		sniffers: []string{"caixabank", "la caixa"},
	}
}

// santanderPatterns cover the Santander-specific table shape: an operation
// date followed by a value date, then description, amount and balance.
// The value date is the one carried into the fragment.
var santanderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+(\d{2}/\d{2}/\d{4})\s+(.+?)\s+([-+]?\d+,\d{2})\s+([-+]?\d+,\d{2})`),
	regexp.MustCompile(`(\d{2}-\d{2}-\d{4})\s+(.+?)\s+([-+]?\d+,\d{2})`),
}

// SantanderParser handles Banco Santander statements. The two-date layout is
// tried first: the generic patterns would otherwise swallow the value date
// into the description.
type SantanderParser struct {
	SpanishParser
}

// NewSantander creates the Santander parser.
func NewSantander() *SantanderParser {
	return &SantanderParser{SpanishParser{
		id:       "santander",
		sniffers: []string{"santander"},
	}}
}

// Extract runs the Santander-specific pass first and falls back to the
// generic Spanish patterns.
func (p *SantanderParser) Extract(text string) ([]models.Fragment, error) {
	if fragments := p.extractSantander(text); len(fragments) > 0 {
		return fragments, nil
	}
	return p.SpanishParser.Extract(text)
}

func (p *SantanderParser) extractSantander(text string) []models.Fragment {
	var fragments []models.Fragment

	for _, line := range strings.Split(text, "\n") {
		for _, pattern := range santanderPatterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}

			var fragment models.Fragment
			if len(match) >= 6 {
				fragment = models.Fragment{
					RawDate:        match[2],
					RawDescription: textutils.CleanText(match[3]),
					RawAmount:      match[4],
					RawBalance:     match[5],
				}
			} else {
				fragment = models.Fragment{
					RawDate:        match[1],
					RawDescription: textutils.CleanText(match[2]),
					RawAmount:      match[3],
				}
			}

			if !usableDescription(fragment.RawDescription) {
				break
			}
			fragments = append(fragments, fragment)
			break
		}
	}
	return fragments
}
