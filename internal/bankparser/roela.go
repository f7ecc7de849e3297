package bankparser

import (
	"regexp"
	"strings"

	"fjacquet/pdf-csv/internal/models"
	"fjacquet/pdf-csv/internal/textutils"
)

// Banco Roela statements print amounts unsigned; the direction is encoded in
// the transaction code that opens each movement line. The tables below are
// the known code-to-direction rules: explicit lists first, then per-prefix
// defaults with exceptions.
var (
	roelaDebitCodes = map[string]struct{}{
		"309": {}, "313": {}, "314": {}, "317": {}, "318": {}, "319": {},
		"320": {}, "321": {}, "322": {}, "323": {}, "386": {}, "396": {},
		"300100": {}, "700100": {}, "710100": {}, "750100": {}, "760100": {},
		"810100": {}, "860100": {}, "880100": {}, "F30100": {},
	}

	roelaCreditCodes = map[string]struct{}{
		"305": {}, "310": {}, "324": {}, "325": {}, "332": {}, "333": {},
		"334": {}, "335": {}, "720100": {}, "740100": {}, "770100": {},
		"F40001": {},
	}

	roelaPrefixRules = map[byte]roelaPrefixRule{
		'1': {debitDefault: true},
		'2': {debitDefault: true, credits: set("290", "291", "296", "200001", "240001", "290001")},
		'4': {debitDefault: false, debits: set("400101", "400111")},
		'5': {debitDefault: false, debits: set("557", "583", "585", "586", "593", "594", "500131")},
	}

	roelaCodeRe   = regexp.MustCompile(`^[A-Za-z]?\d+$`)
	roelaAmountRe = regexp.MustCompile(`-?\d{1,3}(?:[.,]\d{3})*[.,]\d{2}`)
	roelaDateRe   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

type roelaPrefixRule struct {
	debitDefault bool
	debits       map[string]struct{}
	credits      map[string]struct{}
}

func set(codes ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return m
}

// roelaIsDebit resolves a transaction code to a direction. Unknown shapes and
// unknown prefixes read as debits, the conservative choice for an expense
// ledger.
func roelaIsDebit(code string) bool {
	code = strings.TrimSpace(code)
	if _, ok := roelaDebitCodes[code]; ok {
		return true
	}
	if _, ok := roelaCreditCodes[code]; ok {
		return false
	}
	if !roelaCodeRe.MatchString(code) {
		return true
	}

	numPart := strings.TrimLeft(code, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")
	if numPart == "" {
		return true
	}
	rule, ok := roelaPrefixRules[numPart[0]]
	if !ok {
		return true
	}
	if _, ok := rule.credits[numPart]; ok {
		return false
	}
	if _, ok := rule.debits[numPart]; ok {
		return true
	}
	return rule.debitDefault
}

// RoelaParser handles Banco Roela (Argentina) statements. Movement dates
// stand on their own lines and apply to every following movement until the
// next date line; balance lines are skipped; lines without an amount extend
// the previous movement's description.
type RoelaParser struct {
	ArgentinianParser
}

// NewRoela creates the Roela parser.
func NewRoela() *RoelaParser {
	return &RoelaParser{ArgentinianParser{SpanishParser{
		id:       "roela_ar",
		aliases:  []string{"roela"},
		sniffers: []string{"banco roela", "roela"},
	}}}
}

// Extract walks the statement line by line, tracking the current movement
// date and deriving each amount's sign from the transaction code.
func (p *RoelaParser) Extract(text string) ([]models.Fragment, error) {
	var fragments []models.Fragment
	currentDate := ""

	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		tokens := strings.Fields(raw)
		if len(tokens) == 0 {
			continue
		}

		if roelaDateRe.MatchString(tokens[0]) {
			currentDate = tokens[0]
			continue
		}
		if strings.EqualFold(tokens[0], "SALDO") {
			continue
		}

		loc := roelaAmountRe.FindStringIndex(raw)
		if loc == nil || currentDate == "" {
			// Continuation of the previous movement's description.
			if len(fragments) > 0 {
				last := &fragments[len(fragments)-1]
				last.RawDescription += " " + textutils.CleanText(raw)
			}
			continue
		}

		desc := textutils.CleanText(strings.TrimRight(raw[:loc[0]], " "))
		code := strings.SplitN(desc, " ", 2)[0]
		if !roelaCodeRe.MatchString(code) {
			continue
		}

		fragments = append(fragments, models.Fragment{
			RawDate:        currentDate,
			RawDescription: desc,
			RawAmount:      raw[loc[0]:loc[1]],
			Negate:         roelaIsDebit(code),
		})
	}
	return fragments, nil
}
