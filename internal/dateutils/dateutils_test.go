package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   string
		expectedOk bool
	}{
		{"Slash European", "01/03/2024", "2024-03-01", true},
		{"Dash European", "15-06-2023", "2023-06-15", true},
		{"ISO format", "2024-03-01", "2024-03-01", true},
		{"Dot European", "15.06.2023", "2023-06-15", true},
		{"Space separated", "15 06 2023", "2023-06-15", true},
		{"Ambiguous reads day first", "05/03/2024", "2024-03-05", true},
		{"Month first when day impossible", "03/15/2024", "2024-03-15", true},
		{"Surrounding whitespace", "  01/03/2024  ", "2024-03-01", true},
		{"Empty string", "", "", false},
		{"Not a date", "hello", "", false},
		{"Impossible day", "32/01/2024", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, ok := ParseDate(tc.input)
			assert.Equal(t, tc.expectedOk, ok)
			assert.Equal(t, tc.expected, date)
		})
	}
}

func TestParseDateTwoDigitYearWindow(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Low year maps to 2000s", "10/01/24", "2024-01-10"},
		{"Year 15 maps to 2015", "15/06/15", "2015-06-15"},
		{"Year 49 maps to 2049", "01/01/49", "2049-01-01"},
		{"Year 50 maps to 1950", "01/01/50", "1950-01-01"},
		{"Year 85 maps to 1985", "15/06/85", "1985-06-15"},
		{"Year 99 maps to 1999", "31/12/99", "1999-12-31"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, ok := ParseDate(tc.input)
			assert.True(t, ok)
			assert.Equal(t, tc.expected, date)
		})
	}
}
