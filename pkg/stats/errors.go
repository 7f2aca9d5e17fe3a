package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrFileFormat matches every *FileFormatError.
	ErrFileFormat = errors.New("file format error")
	// ErrNoData matches every *NoDataAvailableError.
	ErrNoData = errors.New("no data available")
)

// FileFormatError reports an input table that could not be opened or
// does not have the expected shape.
type FileFormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FileFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *FileFormatError) Unwrap() error { return e.Err }

func (e *FileFormatError) Is(target error) bool { return target == ErrFileFormat }

func formatError(path, reason string, err error) *FileFormatError {
	return &FileFormatError{Path: path, Reason: reason, Err: err}
}

// NoDataAvailableError is returned when no year carries a single value.
type NoDataAvailableError struct {
	Years int // distinct years inspected
}

func (e *NoDataAvailableError) Error() string {
	return fmt.Sprintf("no year with data found (%d years inspected)", e.Years)
}

func (e *NoDataAvailableError) Is(target error) bool { return target == ErrNoData }
