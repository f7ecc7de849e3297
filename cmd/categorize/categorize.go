// Package categorize handles the description categorization command.
package categorize

import (
	"fmt"
	"strings"

	"fjacquet/pdf-csv/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize <description>",
	Short: "Categorize a transaction description",
	Long:  `Run the keyword categorizer over a transaction description and print the category.`,
	Args:  cobra.MinimumNArgs(1),
	Run:   categorizeFunc,
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	description := strings.Join(args, " ")
	category := root.NewCategorizer().Categorize(description)
	fmt.Println(category)
}
