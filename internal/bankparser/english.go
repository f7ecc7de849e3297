package bankparser

import (
	"regexp"
	"strconv"
	"strings"

	"fjacquet/pdf-csv/internal/models"
	"fjacquet/pdf-csv/internal/textutils"
)

// englishPatterns are the line shapes of US/UK statement tables with Anglo
// number formatting and optional dollar signs.
var englishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+([-+]?\$?\d+[.,]\d{2})\s+([-+]?\$?\d+[.,]\d{2})`),
	regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{4})\s+(.+?)\s+([-+]?\$?\d+[.,]\d{2})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})`),
}

var (
	chaseSectionDateRe = regexp.MustCompile(`^\s*(\d{1,2}/\d{1,2})\s+(.+)`)
	chaseAmountRe      = regexp.MustCompile(`\$?([\d,]+\.\d{2})\s*$`)
	yearRe             = regexp.MustCompile(`\b(20\d{2})\b`)
)

// EnglishParser is the generic parser for English-language statements. Chase
// statements get a dedicated pass because they print month-day dates without
// a year and group transactions into signed sections.
type EnglishParser struct{}

// NewEnglish creates the generic English parser.
func NewEnglish() *EnglishParser { return &EnglishParser{} }

// ID returns the bank identifier.
func (p *EnglishParser) ID() string { return "generic_english" }

// Aliases returns the major US/UK banks the generic layout covers.
func (p *EnglishParser) Aliases() []string {
	return []string{
		"chase", "bank_of_america", "wells_fargo", "citibank",
		"hsbc", "barclays", "deutsche_bank",
	}
}

// CanHandle sniffs for English statement vocabulary.
func (p *EnglishParser) CanHandle(text string) bool {
	return containsAny(strings.ToLower(text),
		"chase", "jpmorgan", "account number", "statement period", "beginning balance")
}

// Extract dispatches to the Chase section format when the document mentions
// Chase, otherwise scans with the generic English patterns.
func (p *EnglishParser) Extract(text string) ([]models.Fragment, error) {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "chase") || strings.Contains(lower, "jpmorgan") {
		return p.extractChase(text), nil
	}
	return scanLines(text, englishPatterns), nil
}

// extractChase walks the statement's sections. Deposit lines are credits;
// withdrawal and fee lines are debits even though their amounts print
// unsigned, so those fragments carry the Negate hint. Chase dates omit the
// year, which is recovered from the statement header.
func (p *EnglishParser) extractChase(text string) []models.Fragment {
	lines := strings.Split(text, "\n")
	year := chaseStatementYear(lines)

	var fragments []models.Fragment
	section := ""

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(line, "Total "):
			section = ""
			continue
		case strings.Contains(lower, "deposits and additions"):
			section = "deposits"
			continue
		case strings.Contains(lower, "electronic withdrawals"):
			section = "withdrawals"
			continue
		case lower == "fees":
			section = "fees"
			continue
		}

		if section == "" || line == "" {
			continue
		}
		if strings.Contains(line, "DATE") && strings.Contains(line, "DESCRIPTION") && strings.Contains(line, "AMOUNT") {
			continue
		}

		dateMatch := chaseSectionDateRe.FindStringSubmatch(line)
		if dateMatch == nil {
			continue
		}
		rest := dateMatch[2]
		amountMatch := chaseAmountRe.FindStringSubmatchIndex(rest)
		if amountMatch == nil {
			continue
		}

		desc := textutils.CleanText(strings.TrimSpace(rest[:amountMatch[0]]))
		if !usableDescription(desc) {
			continue
		}

		fragments = append(fragments, models.Fragment{
			RawDate:        dateMatch[1] + "/" + year,
			RawDescription: desc,
			RawAmount:      rest[amountMatch[2]:amountMatch[3]],
			Negate:         section == "withdrawals" || section == "fees",
		})
	}
	return fragments
}

// chaseStatementYear finds the statement year in the header lines, defaulting
// to the most recent year mentioned or 2024 when none appears.
func chaseStatementYear(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		years := yearRe.FindAllString(line, -1)
		if len(years) == 0 {
			continue
		}
		max := 0
		for _, y := range years {
			if n, err := strconv.Atoi(y); err == nil && n > max {
				max = n
			}
		}
		if max > 0 {
			return strconv.Itoa(max)
		}
	}
	return "2024"
}
