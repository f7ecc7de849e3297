package validation

import (
	"fmt"
	"testing"

	"fjacquet/pdf-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfFile(name string, size int) models.InputFile {
	return models.InputFile{Name: name, Data: make([]byte, size)}
}

func TestValidateFilesAccepts(t *testing.T) {
	result := ValidateFiles([]models.InputFile{
		pdfFile("statement.pdf", 1024),
		pdfFile("STATEMENT2.PDF", 2048),
	}, DefaultLimits())

	assert.True(t, result.Valid())
	assert.Empty(t, result.Errors())
	assert.Empty(t, result.FileErrors)
}

func TestValidateFilesTooMany(t *testing.T) {
	var files []models.InputFile
	for i := 0; i < DefaultMaxFiles+1; i++ {
		files = append(files, pdfFile(fmt.Sprintf("f%d.pdf", i), 10))
	}

	result := ValidateFiles(files, DefaultLimits())
	assert.False(t, result.Valid())
	require.Len(t, result.BatchErrors, 1)
	assert.Contains(t, result.BatchErrors[0], "Too many files uploaded")

	// Batch-level errors do not mark individual files invalid.
	assert.Empty(t, result.FileErrors)
	assert.False(t, result.FileInvalid("f0.pdf"))
}

func TestValidateFilesWrongType(t *testing.T) {
	result := ValidateFiles([]models.InputFile{
		pdfFile("notes.docx", 10),
		pdfFile("ok.pdf", 10),
	}, DefaultLimits())

	assert.False(t, result.Valid())
	require.Len(t, result.FileErrors["notes.docx"], 1)
	assert.Contains(t, result.FileErrors["notes.docx"][0], "notes.docx")
	assert.True(t, result.FileInvalid("notes.docx"))
	assert.False(t, result.FileInvalid("ok.pdf"))
}

func TestValidateFilesTooLarge(t *testing.T) {
	result := ValidateFiles([]models.InputFile{
		pdfFile("big.pdf", 3*1024*1024),
	}, Limits{MaxFiles: 10, MaxFileSizeMB: 2})

	assert.False(t, result.Valid())
	require.Len(t, result.FileErrors["big.pdf"], 1)
	assert.Contains(t, result.FileErrors["big.pdf"][0], "big.pdf")
	assert.Contains(t, result.FileErrors["big.pdf"][0], "too large")
}

// A filename that is a substring of another must never pick up the other
// file's errors: attribution is by exact name, not by message matching.
func TestValidateFilesSubstringNamesStayIndependent(t *testing.T) {
	result := ValidateFiles([]models.InputFile{
		pdfFile("a.pdf", 1024),
		pdfFile("data.pdf", 2*1024*1024),
	}, Limits{MaxFiles: 10, MaxFileSizeMB: 1})

	assert.False(t, result.FileInvalid("a.pdf"))
	assert.Empty(t, result.FileErrors["a.pdf"])

	assert.True(t, result.FileInvalid("data.pdf"))
	require.Len(t, result.FileErrors["data.pdf"], 1)
	assert.Contains(t, result.FileErrors["data.pdf"][0], "data.pdf is too large")
}

func TestValidateFilesAccumulates(t *testing.T) {
	files := []models.InputFile{
		pdfFile("a.txt", 10),
		pdfFile("b.pdf", 3*1024*1024),
	}
	result := ValidateFiles(files, Limits{MaxFiles: 1, MaxFileSizeMB: 2})

	// One batch error plus one error per offending file.
	assert.Len(t, result.Errors(), 3)
	assert.Len(t, result.BatchErrors, 1)
	assert.Len(t, result.FileErrors, 2)
}
