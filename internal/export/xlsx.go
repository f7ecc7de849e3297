package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"fjacquet/pdf-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	transactionsSheet = "Transactions"
	summarySheet      = "Summary"
)

var transactionHeaders = []string{
	"Date", "Description", "Amount", "Currency", "Category",
	"Account Number", "Source Bank", "Balance", "Type",
}

// WriteXLSX writes transactions to w as a workbook with a Transactions sheet
// and a Summary sheet of per-bank and per-category totals.
func WriteXLSX(transactions []models.Transaction, w io.Writer) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to XLSX")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", transactionsSheet); err != nil {
		return fmt.Errorf("error preparing workbook: %w", err)
	}

	for col, header := range transactionHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(transactionsSheet, cell, header); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}

	for row, tx := range transactions {
		amount, _ := tx.Amount.Round(2).Float64()
		values := []interface{}{
			tx.Date, tx.Description, amount, tx.Currency, tx.Category,
			tx.AccountNumber, tx.SourceBank, tx.Balance, tx.Type,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(transactionsSheet, cell, v); err != nil {
				return fmt.Errorf("error writing row %d: %w", row+2, err)
			}
		}
	}

	if err := writeSummarySheet(f, transactions); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing XLSX data: %w", err)
	}
	return nil
}

// WriteXLSXFile writes transactions to the named file, creating parent
// directories as needed.
func WriteXLSXFile(transactions []models.Transaction, xlsxFile string) error {
	log.WithField("file", xlsxFile).
		WithField("count", len(transactions)).
		Info("Writing transactions to XLSX file")

	dir := filepath.Dir(xlsxFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(xlsxFile)
	if err != nil {
		return fmt.Errorf("error creating XLSX file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return WriteXLSX(transactions, file)
}

type summaryGroup struct {
	key   string
	count int
	total decimal.Decimal
}

// writeSummarySheet adds totals grouped by source bank and by category.
func writeSummarySheet(f *excelize.File, transactions []models.Transaction) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("error creating summary sheet: %w", err)
	}

	row := 1
	writeRow := func(values ...interface{}) error {
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("error writing summary: %w", err)
			}
		}
		row++
		return nil
	}

	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Amount)
	}
	totalFloat, _ := total.Round(2).Float64()
	if err := writeRow("Transactions", len(transactions)); err != nil {
		return err
	}
	if err := writeRow("Net amount", totalFloat); err != nil {
		return err
	}
	row++

	for _, section := range []struct {
		title string
		keyOf func(models.Transaction) string
	}{
		{"By bank", func(tx models.Transaction) string { return tx.SourceBank }},
		{"By category", func(tx models.Transaction) string { return tx.Category }},
	} {
		if err := writeRow(section.title, "Count", "Total"); err != nil {
			return err
		}
		for _, g := range groupBy(transactions, section.keyOf) {
			groupTotal, _ := g.total.Round(2).Float64()
			if err := writeRow(g.key, g.count, groupTotal); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func groupBy(transactions []models.Transaction, keyOf func(models.Transaction) string) []summaryGroup {
	byKey := make(map[string]*summaryGroup)
	for _, tx := range transactions {
		key := keyOf(tx)
		g, ok := byKey[key]
		if !ok {
			g = &summaryGroup{key: key, total: decimal.Zero}
			byKey[key] = g
		}
		g.count++
		g.total = g.total.Add(tx.Amount)
	}

	groups := make([]summaryGroup, 0, len(byKey))
	for _, g := range byKey {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].key < groups[j].key })
	return groups
}
