// Package detect handles the bank detection command.
package detect

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/pdf-csv/cmd/root"
	"fjacquet/pdf-csv/internal/pdftext"
	"fjacquet/pdf-csv/internal/textutils"

	"github.com/spf13/cobra"
)

// Cmd represents the detect command.
var Cmd = &cobra.Command{
	Use:   "detect <file.pdf>",
	Short: "Detect which bank issued a statement",
	Long:  `Extract the statement text and report the bank parser that claims it.`,
	Args:  cobra.ExactArgs(1),
	Run:   detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		root.Log.Fatalf("Error reading %s: %v", path, err)
	}

	extractor := pdftext.NewReaderExtractor()
	text, err := extractor.ExtractText(cmd.Context(), filepath.Base(path), data)
	if err != nil {
		root.Log.Fatalf("Error extracting text: %v", err)
	}

	registry := root.NewRegistry()
	p, ok := registry.Sniff(textutils.CleanTextPreservingLines(text))
	if !ok {
		fmt.Println("No bank parser recognized this statement")
		fmt.Printf("Known identifiers: %v\n", registry.IDs())
		os.Exit(1)
	}
	fmt.Println(p.ID())
}
