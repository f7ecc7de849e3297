package export

import (
	"bytes"
	"testing"

	"fjacquet/pdf-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(sampleTransactions(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Transactions")
	assert.Contains(t, sheets, "Summary")

	header, err := f.GetCellValue("Transactions", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	date, err := f.GetCellValue("Transactions", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", date)

	desc, err := f.GetCellValue("Transactions", "B2")
	require.NoError(t, err)
	assert.Equal(t, "SUPERMERCADO EL CORTE", desc)

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	// The summary opens with the transaction count.
	label, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Transactions", label)
	count, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}

func TestWriteXLSXNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteXLSX(nil, &buf))
}

func TestGroupBy(t *testing.T) {
	groups := groupBy(sampleTransactions(), func(tx models.Transaction) string {
		return tx.Category
	})
	require.Len(t, groups, 2)
	// Sorted by key.
	assert.Equal(t, "Food & Dining", groups[0].key)
	assert.Equal(t, 1, groups[0].count)
	assert.Equal(t, "Income", groups[1].key)
	assert.True(t, groups[1].total.Equal(sampleTransactions()[1].Amount))
}
