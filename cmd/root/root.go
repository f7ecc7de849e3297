// Package root contains the root command for the application.
package root

import (
	"time"

	"fjacquet/pdf-csv/internal/bankparser"
	"fjacquet/pdf-csv/internal/categorizer"
	"fjacquet/pdf-csv/internal/config"
	"fjacquet/pdf-csv/internal/export"
	"fjacquet/pdf-csv/internal/logging"
	"fjacquet/pdf-csv/internal/parser"
	"fjacquet/pdf-csv/internal/pdftext"
	"fjacquet/pdf-csv/internal/pipeline"
	"fjacquet/pdf-csv/internal/store"
	"fjacquet/pdf-csv/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags are the flags shared by the conversion commands.
type CommonFlags struct {
	Output string
	Format string
	Bank   string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// KeepUndated overrides conversion.keep_undated from the command line.
	KeepUndated bool

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "pdf-csv",
		Short: "A CLI tool to convert bank statement PDFs to CSV and categorize transactions.",
		Long: `pdf-csv converts bank statement PDFs into a normalized transaction ledger.
It detects the issuing bank, parses the statement, categorizes each
transaction and writes CSV or XLSX output.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pdf-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}

			Log = config.ConfigureLoggingFromConfig(Cfg)
			logging.SetLevel(Cfg.Log.Level)
			export.SetLogger(GetLogger())
			export.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
		},
	}
)

// GetLogger returns the shared logger wrapped in the application's logging
// interface.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// NewRegistry builds the default bank parser registry.
func NewRegistry() *parser.Registry {
	registry, err := bankparser.NewDefaultRegistry()
	if err != nil {
		Log.Fatalf("Failed to build parser registry: %v", err)
	}
	return registry
}

// NewCategorizer builds the categorizer, honoring a configured category file.
func NewCategorizer() *categorizer.Categorizer {
	logger := GetLogger()
	if Cfg != nil && Cfg.Categorization.CategoriesFile != "" {
		st := store.NewCategoryStore(Cfg.Categorization.CategoriesFile)
		return categorizer.NewFromStore(st, logger)
	}
	return categorizer.New(logger)
}

// NewPipeline wires the conversion pipeline from the loaded configuration.
func NewPipeline() *pipeline.Pipeline {
	opts := pipeline.DefaultOptions()
	if Cfg != nil {
		opts.Limits = validation.Limits{
			MaxFiles:      Cfg.Upload.MaxFiles,
			MaxFileSizeMB: Cfg.Upload.MaxFileSizeMB,
		}
		opts.ExtractTimeout = time.Duration(Cfg.Extraction.TimeoutSeconds) * time.Second
		opts.KeepUndated = Cfg.Conversion.KeepUndated
	}
	if KeepUndated {
		opts.KeepUndated = true
	}
	return pipeline.New(NewRegistry(), pdftext.NewReaderExtractor(), NewCategorizer(), GetLogger(), opts)
}

// Init registers subcommands and flags on the root command.
func Init(subcommands ...*cobra.Command) {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file path")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "csv", "Output format (csv or xlsx)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Bank, "bank", "b", "", "Bank identifier hint (e.g. santander, chase)")
	Cmd.PersistentFlags().BoolVar(&KeepUndated, "keep-undated", false, "Keep records whose date cannot be parsed")

	for _, sub := range subcommands {
		Cmd.AddCommand(sub)
	}
}

// Execute runs the root command.
func Execute() error {
	return Cmd.Execute()
}
