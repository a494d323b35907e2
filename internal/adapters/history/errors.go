package history

import "errors"

// Sentinel kinds for history-store errors.
var (
	ErrCreateDir      = errors.New("create history directory failed")
	ErrWriteSnapshot  = errors.New("write snapshot failed")
	ErrEncodeSnapshot = errors.New("encode snapshot failed")
)
