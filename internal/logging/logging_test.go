package logging

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("processing started", Field{Key: FieldFile, Value: "a.pdf"})
	mock.WithError(errors.New("boom")).Error("processing failed")

	assert.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasMessage("processing started"))
	assert.True(t, mock.HasMessage("processing failed"))
	assert.False(t, mock.HasMessage("never logged"))

	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, FieldFile, mock.Entries[0].Fields[0].Key)
	assert.EqualError(t, mock.Entries[1].Error, "boom")
}

// One mock is shared across per-file workers during batch processing, so
// concurrent writes must be safe under the race detector.
func TestMockLoggerConcurrentUse(t *testing.T) {
	mock := &MockLogger{}

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				mock.Info("worker entry",
					Field{Key: FieldFile, Value: fmt.Sprintf("f%d.pdf", w)})
			}
		}(w)
	}
	wg.Wait()

	assert.Len(t, mock.Captured(), workers*perWorker)
	assert.True(t, mock.HasMessage("worker entry"))
}

func TestSetLevel(t *testing.T) {
	// Unknown levels must not panic and leave a usable logger behind.
	SetLevel("debug")
	SetLevel("not-a-level")
	logger := GetLogger()
	assert.NotNil(t, logger)
	logger.Debug("still usable")
}
