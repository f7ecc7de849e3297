// Package accountutils extracts account identifiers from statement text.
package accountutils

import (
	"regexp"
	"strings"
)

// accountPatterns is the ordered list of recognized account-number shapes:
// IBAN first, then labelled bank-local patterns in Spanish and English. The
// first match wins.
var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)IBAN[:\s]+([A-Z]{2}[0-9]{2}[A-Z0-9]{11,30})`),
	regexp.MustCompile(`(?i)N[úu]mero de cuenta[: ]+([0-9\- ]{10,30})`),
	regexp.MustCompile(`(?i)Account number[: ]+([0-9\- ]{8,20})`),
	regexp.MustCompile(`(?i)Cuenta[: ]+([0-9\- ]{8,20})`),
}

// ExtractAccountNumber searches the full document text for an account number
// and returns it with internal whitespace and separators stripped.
func ExtractAccountNumber(text string) (string, bool) {
	for _, pattern := range accountPatterns {
		matches := pattern.FindStringSubmatch(text)
		if len(matches) > 1 {
			account := strings.TrimSpace(matches[1])
			account = strings.ReplaceAll(account, " ", "")
			account = strings.ReplaceAll(account, "-", "")
			if account != "" {
				return account, true
			}
		}
	}
	return "", false
}
