// Package convert handles statement conversion commands.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/pdf-csv/cmd/root"
	"fjacquet/pdf-csv/internal/export"
	"fjacquet/pdf-csv/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command.
var Cmd = &cobra.Command{
	Use:   "convert <file.pdf> [file.pdf...]",
	Short: "Convert bank statement PDFs to CSV or XLSX",
	Long: `Convert one or more bank statement PDFs into a normalized transaction
ledger. The issuing bank is detected from the document content unless a
--bank hint is given.`,
	Args: cobra.MinimumNArgs(1),
	Run:  convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	files := make([]models.InputFile, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			root.Log.Fatalf("Error reading %s: %v", path, err)
		}
		files = append(files, models.InputFile{
			Name:     filepath.Base(path),
			Data:     data,
			BankHint: root.SharedFlags.Bank,
		})
	}

	result := root.NewPipeline().Process(cmd.Context(), files)
	for _, e := range result.Errors() {
		logger.Warn(e)
	}

	transactions := result.Transactions()
	if len(transactions) == 0 {
		root.Log.Fatal("No transactions could be extracted")
	}

	output := root.SharedFlags.Output
	format := strings.ToLower(root.SharedFlags.Format)
	if output == "" {
		base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		output = base + "." + format
	}

	var err error
	switch format {
	case "csv":
		err = export.WriteCSVFile(transactions, output)
	case "xlsx":
		err = export.WriteXLSXFile(transactions, output)
	default:
		root.Log.Fatalf("Unknown output format: %s (must be csv or xlsx)", format)
	}
	if err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}

	fmt.Printf("Wrote %d transactions to %s\n", len(transactions), output)
}
