// Package bankparser holds the bank-specific parser implementations. Each
// parser turns already-extracted statement text into raw transaction
// fragments using document-specific line patterns; normalization and
// categorization happen in the pipeline.
package bankparser

import (
	"regexp"
	"strings"

	"fjacquet/pdf-csv/internal/models"
	"fjacquet/pdf-csv/internal/parser"
	"fjacquet/pdf-csv/internal/textutils"
)

// NewDefaultRegistry builds the registry with every known parser, specific
// banks before the generic fallbacks so content sniffing prefers the most
// precise rule set. Registration order is deterministic.
func NewDefaultRegistry() (*parser.Registry, error) {
	registry := parser.NewRegistry()
	parsers := []parser.Parser{
		NewSantander(),
		NewBBVA(),
		NewCaixaBank(),
		NewGalicia(),
		NewRoela(),
		NewArgentinian(),
		NewSpanish(),
		NewEnglish(),
	}
	for _, p := range parsers {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// digitsOnlyRe matches descriptions that are nothing but digits, which are
// column bleed-through rather than real descriptions.
var digitsOnlyRe = regexp.MustCompile(`^\d+$`)

// usableDescription filters out fragments whose description is too short or
// purely numeric to be a transaction.
func usableDescription(desc string) bool {
	return len(desc) >= 3 && !digitsOnlyRe.MatchString(desc)
}

// scanLines runs each line of the text against an ordered pattern list and
// collects a fragment from the first pattern that matches. Patterns capture
// (date, description, amount) and optionally a trailing balance group.
func scanLines(text string, patterns []*regexp.Regexp) []models.Fragment {
	var fragments []models.Fragment

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, pattern := range patterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}

			desc := textutils.CleanText(match[2])
			if !usableDescription(desc) {
				break
			}

			fragment := models.Fragment{
				RawDate:        match[1],
				RawDescription: desc,
				RawAmount:      match[3],
			}
			if len(match) > 4 {
				fragment.RawBalance = match[4]
			}
			fragments = append(fragments, fragment)
			break
		}
	}
	return fragments
}

// containsAny reports whether the lowercased text contains any marker.
func containsAny(lower string, markers ...string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
