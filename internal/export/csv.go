// Package export writes the normalized ledger to the supported output
// formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/pdf-csv/internal/logging"
	"fjacquet/pdf-csv/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter. Configurable through the config
// layer or the CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger installs a configured logger for the package.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// WriteCSV writes transactions to w with a header row, one transaction per
// row, amounts with two decimal places.
func WriteCSV(transactions []models.Transaction, w io.Writer) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	for i := range transactions {
		transactions[i].Amount = transactions[i].Amount.Round(2)
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteCSVFile writes transactions to the named file, creating parent
// directories as needed.
func WriteCSVFile(transactions []models.Transaction, csvFile string) error {
	log.WithField(logging.FieldFile, csvFile).
		WithField(logging.FieldCount, len(transactions)).
		Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(transactions, file); err != nil {
		return err
	}

	log.WithField(logging.FieldFile, csvFile).
		WithField(logging.FieldCount, len(transactions)).
		Info("Successfully wrote transactions to CSV file")
	return nil
}
