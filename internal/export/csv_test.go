package export

import (
	"bytes"
	"strings"
	"testing"

	"fjacquet/pdf-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			Date:          "2024-03-01",
			Description:   "SUPERMERCADO EL CORTE",
			Amount:        decimal.NewFromFloat(-45.30),
			Currency:      "EUR",
			Category:      "Food & Dining",
			AccountNumber: "123456789012",
			SourceBank:    "generic_spanish",
			Type:          models.TypeDebit,
		},
		{
			Date:        "2024-03-02",
			Description: "NOMINA EMPRESA SL",
			Amount:      decimal.NewFromFloat(1200),
			Currency:    "EUR",
			Category:    "Income",
			SourceBank:  "generic_spanish",
			Balance:     "1.245,30",
			Type:        models.TypeCredit,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(sampleTransactions(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Date,Description,Amount,Currency,Category,Account,Bank,Balance,Type", lines[0])
	assert.Contains(t, lines[1], "2024-03-01")
	assert.Contains(t, lines[1], "SUPERMERCADO EL CORTE")
	assert.Contains(t, lines[1], "-45.3")
	assert.Contains(t, lines[2], "NOMINA EMPRESA SL")
	assert.Contains(t, lines[2], "Income")
}

func TestWriteCSVNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteCSV(nil, &buf))
}

func TestWriteCSVEmptySlice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV([]models.Transaction{}, &buf))
	// Header only.
	assert.Equal(t, "Date,Description,Amount,Currency,Category,Account,Bank,Balance,Type",
		strings.TrimSpace(buf.String()))
}

func TestSetDelimiter(t *testing.T) {
	defer SetDelimiter(',')
	SetDelimiter(';')

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(sampleTransactions(), &buf))
	assert.Contains(t, buf.String(), "Date;Description;Amount")
}
