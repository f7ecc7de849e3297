// Package pipeline wires the conversion stages together: upload validation,
// text extraction, bank resolution, fragment extraction, normalization and
// categorization. Files in a batch are processed independently and in
// parallel; no failure in one file ever aborts another.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fjacquet/pdf-csv/internal/accountutils"
	"fjacquet/pdf-csv/internal/categorizer"
	"fjacquet/pdf-csv/internal/currencyutils"
	"fjacquet/pdf-csv/internal/dateutils"
	"fjacquet/pdf-csv/internal/logging"
	"fjacquet/pdf-csv/internal/models"
	"fjacquet/pdf-csv/internal/parser"
	"fjacquet/pdf-csv/internal/parsererror"
	"fjacquet/pdf-csv/internal/pdftext"
	"fjacquet/pdf-csv/internal/textutils"
	"fjacquet/pdf-csv/internal/validation"
)

// Options configures a Pipeline.
type Options struct {
	Limits         validation.Limits
	ExtractTimeout time.Duration
	// KeepUndated emits records whose date cannot be normalized with an
	// empty date instead of dropping them with an error.
	KeepUndated bool
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{
		Limits:         validation.DefaultLimits(),
		ExtractTimeout: 30 * time.Second,
	}
}

// FileResult is the outcome of processing one uploaded document.
type FileResult struct {
	File          string
	Bank          string
	AccountNumber string
	Currency      string
	Transactions  []models.Transaction
	Errors        []string
}

// BatchResult aggregates every file's outcome plus batch-level errors. The
// merged transaction list preserves upload order, then statement order.
type BatchResult struct {
	Files       []FileResult
	BatchErrors []string
}

// Transactions returns the merged, ordered transaction list.
func (b BatchResult) Transactions() []models.Transaction {
	var all []models.Transaction
	for _, f := range b.Files {
		all = append(all, f.Transactions...)
	}
	return all
}

// Errors returns every error in the batch, batch-level first, then per file.
func (b BatchResult) Errors() []string {
	all := append([]string{}, b.BatchErrors...)
	for _, f := range b.Files {
		all = append(all, f.Errors...)
	}
	return all
}

// Pipeline orchestrates the conversion of uploaded statements into the
// normalized ledger.
type Pipeline struct {
	registry    *parser.Registry
	extractor   pdftext.Extractor
	categorizer *categorizer.Categorizer
	logger      logging.Logger
	opts        Options
}

// New creates a Pipeline.
func New(registry *parser.Registry, extractor pdftext.Extractor, cat *categorizer.Categorizer, logger logging.Logger, opts Options) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.ExtractTimeout <= 0 {
		opts.ExtractTimeout = DefaultOptions().ExtractTimeout
	}
	return &Pipeline{
		registry:    registry,
		extractor:   extractor,
		categorizer: cat,
		logger:      logger,
		opts:        opts,
	}
}

// Process validates the batch and converts every file that passed its
// per-file rules, one worker per file. A batch-size overflow is reported but
// does not stop processing; per-file validation failures skip only the
// offending file.
func (p *Pipeline) Process(ctx context.Context, files []models.InputFile) BatchResult {
	result := BatchResult{Files: make([]FileResult, len(files))}

	vr := validation.ValidateFiles(files, p.opts.Limits)
	result.BatchErrors = append(result.BatchErrors, vr.BatchErrors...)

	var wg sync.WaitGroup
	for i := range files {
		file := files[i]

		if vr.FileInvalid(file.Name) {
			result.Files[i] = FileResult{
				File:   file.Name,
				Errors: append([]string{}, vr.FileErrors[file.Name]...),
			}
			continue
		}

		wg.Add(1)
		go func(i int, file models.InputFile) {
			defer wg.Done()
			result.Files[i] = p.processFile(ctx, file)
		}(i, file)
	}
	wg.Wait()

	return result
}

// processFile runs one document through extraction, resolution, parsing and
// normalization. Every failure becomes a readable error naming the file.
func (p *Pipeline) processFile(ctx context.Context, file models.InputFile) FileResult {
	result := FileResult{File: file.Name}
	log := p.logger.WithField(logging.FieldFile, file.Name)

	log.Debug("Starting file processing", logging.Field{Key: logging.FieldStage, Value: "extract"})

	extractCtx, cancel := context.WithTimeout(ctx, p.opts.ExtractTimeout)
	defer cancel()

	text, err := p.extractor.ExtractText(extractCtx, file.Name, file.Data)
	if err != nil {
		log.WithError(err).Error("Text extraction failed")
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	if strings.TrimSpace(text) == "" {
		log.Warn("No text extracted from document",
			logging.Field{Key: logging.FieldReason, Value: "image-based or corrupted"})
		result.Errors = append(result.Errors, fmt.Sprintf(
			"%s: could not extract text from PDF, file may be image-based or corrupted", file.Name))
		return result
	}

	cleaned := textutils.CleanTextPreservingLines(text)

	bankParser, err := p.resolveParser(cleaned, file)
	if err != nil {
		log.WithError(err).Error("Bank resolution failed")
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Bank = bankParser.ID()
	log.Debug("Resolved bank parser", logging.Field{Key: logging.FieldParser, Value: bankParser.ID()})

	if hinter, ok := bankParser.(parser.CurrencyHinter); ok {
		result.Currency = hinter.CurrencyHint(cleaned)
	} else {
		result.Currency = currencyutils.DetectCurrency(cleaned)
	}
	log.Debug("Resolved document currency",
		logging.Field{Key: logging.FieldCurrency, Value: result.Currency})
	if account, ok := accountutils.ExtractAccountNumber(cleaned); ok {
		result.AccountNumber = account
	}

	fragments, err := bankParser.Extract(cleaned)
	if err != nil {
		log.WithError(err).Error("Fragment extraction failed")
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Name, err))
		return result
	}
	log.Debug("Extracted fragments", logging.Field{Key: logging.FieldCount, Value: len(fragments)})

	for _, fragment := range fragments {
		tx, errMsg := p.normalize(fragment, result, file.Name)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	log.Debug("File processing complete",
		logging.Field{Key: logging.FieldCount, Value: len(result.Transactions)},
		logging.Field{Key: logging.FieldBank, Value: result.Bank})
	return result
}

// resolveParser picks a parser for the document: an explicit hint resolves by
// identifier with the generic fallback, otherwise content sniffing decides.
func (p *Pipeline) resolveParser(text string, file models.InputFile) (parser.Parser, error) {
	if file.BankHint != "" {
		if bp, ok := p.registry.Get(file.BankHint); ok {
			return bp, nil
		}
		if bp, ok := p.registry.Fallback(file.BankHint); ok {
			return bp, nil
		}
		return nil, &parsererror.UnresolvedBankError{File: file.Name, Hint: file.BankHint}
	}

	if bp, ok := p.registry.Sniff(text); ok {
		return bp, nil
	}
	return nil, &parsererror.UnresolvedBankError{File: file.Name}
}

// normalize converts one raw fragment into a Transaction. A non-numeric
// amount rejects the record; an unparseable date rejects it unless
// KeepUndated is set, in which case the record is emitted with an empty date.
func (p *Pipeline) normalize(fragment models.Fragment, doc FileResult, filename string) (models.Transaction, string) {
	amount, err := currencyutils.ParseAmount(fragment.RawAmount)
	if err != nil {
		p.logger.Warn("Amount parse failed",
			logging.Field{Key: logging.FieldFile, Value: filename},
			logging.Field{Key: logging.FieldRaw, Value: fragment.RawAmount})
		return models.Transaction{}, fmt.Sprintf("%s: %v", filename, err)
	}
	if fragment.Negate {
		amount = amount.Abs().Neg()
	}

	date, ok := dateutils.ParseDate(fragment.RawDate)
	if !ok && !p.opts.KeepUndated {
		p.logger.Warn("Date parse failed",
			logging.Field{Key: logging.FieldFile, Value: filename},
			logging.Field{Key: logging.FieldRaw, Value: fragment.RawDate})
		return models.Transaction{}, fmt.Sprintf(
			"%s: %v", filename, &parsererror.DateError{Raw: fragment.RawDate})
	}

	description := textutils.CleanText(fragment.RawDescription)

	return models.Transaction{
		Date:          date,
		Description:   description,
		Amount:        amount,
		Currency:      doc.Currency,
		Category:      p.categorizer.Categorize(description),
		AccountNumber: doc.AccountNumber,
		SourceBank:    doc.Bank,
		Balance:       strings.TrimSpace(fragment.RawBalance),
		Type:          models.TypeForAmount(amount),
	}, ""
}
