package catalog

import "errors"

// Sentinel kinds for catalog loading errors.
var (
	ErrReadCatalog  = errors.New("read catalog file failed")
	ErrParseCatalog = errors.New("parse catalog file failed")
)
