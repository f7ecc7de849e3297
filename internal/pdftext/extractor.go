// Package pdftext turns PDF byte streams into plain text. The extractor is
// an interface so the pipeline stays testable without real PDF fixtures and
// so a different extraction backend can be dropped in.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"fjacquet/pdf-csv/internal/parsererror"
)

// Extractor extracts plain text from PDF bytes. Implementations must surface
// a distinguishable failure for encrypted or corrupt documents rather than
// silently returning empty text, and must respect context cancellation: the
// pipeline bounds each file's extraction with a timeout so one corrupt or
// huge document cannot stall the whole batch.
type Extractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}

// ReaderExtractor is the production Extractor built on the ledongthuc/pdf
// reader. Pages are concatenated in order, separated by newlines.
type ReaderExtractor struct{}

// NewReaderExtractor creates a new ReaderExtractor.
func NewReaderExtractor() *ReaderExtractor {
	return &ReaderExtractor{}
}

// ExtractText extracts the text of every page of the document. The reader
// library panics on some malformed inputs, so the whole pass runs under a
// recover that converts the panic into an ExtractionError.
func (e *ReaderExtractor) ExtractText(ctx context.Context, filename string, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &parsererror.ExtractionError{
				File:   filename,
				Reason: "corrupt or unreadable PDF",
				Err:    fmt.Errorf("reader panic: %v", r),
			}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		reason := "corrupt or unreadable PDF"
		if strings.Contains(strings.ToLower(err.Error()), "encrypt") {
			reason = "encrypted PDF"
		}
		return "", &parsererror.ExtractionError{File: filename, Reason: reason, Err: err}
	}

	var buf bytes.Buffer
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", &parsererror.ExtractionError{File: filename, Reason: "extraction cancelled", Err: err}
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not void the document.
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}

	return buf.String(), nil
}

// MockExtractor implements Extractor for tests, returning predefined text or
// a predefined error.
type MockExtractor struct {
	Text string
	Err  error
}

// ExtractText returns the predefined mock text or error.
func (e *MockExtractor) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	return e.Text, nil
}
