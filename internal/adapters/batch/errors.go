package batch

import "errors"

// Batch loading errors.
var (
	ErrReadBatch  = errors.New("failed to read batch file")
	ErrParseBatch = errors.New("failed to parse batch file")
)
