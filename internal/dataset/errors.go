package dataset

import "errors"

var (
	// ErrSourceNotFound means the results file or directory does not exist.
	ErrSourceNotFound = errors.New("source not found")
	// ErrDataFormat means the file exists but its header or rows do not
	// match the expected shape.
	ErrDataFormat = errors.New("malformed data")
)
