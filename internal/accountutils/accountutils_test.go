package accountutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccountNumber(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			"IBAN",
			"IBAN ES9121000418450200051332\nSaldo anterior",
			"ES9121000418450200051332",
			true,
		},
		{
			"Spanish label",
			"Número de cuenta 1234-5678-9012-3456",
			"1234567890123456",
			true,
		},
		{
			"Spanish label without accent",
			"Numero de cuenta 1234 5678 9012",
			"123456789012",
			true,
		},
		{
			"English label",
			"Account number 12345678",
			"12345678",
			true,
		},
		{
			"Short cuenta label",
			"Cuenta 9876 5432 10",
			"9876543210",
			true,
		},
		{"No account", "Statement period January 2024", "", false},
		{"Empty text", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			account, found := ExtractAccountNumber(tc.text)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, account)
		})
	}
}
