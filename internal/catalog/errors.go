package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnavailable = errors.New("riddle source unavailable")
	ErrDataFormat        = errors.New("riddle data format")
)

// SourceError reports a data source that could not be opened or read.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %v", ErrSourceUnavailable, e.Source, e.Err)
}

func (e *SourceError) Unwrap() []error { return []error{ErrSourceUnavailable, e.Err} }

// DataFormatError reports a source whose content could not be scanned into
// records at all. Individual malformed lines are not errors; they are skipped.
type DataFormatError struct {
	Source string
	Line   int
	Msg    string
}

func (e *DataFormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s line %d: %s", ErrDataFormat, e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", ErrDataFormat, e.Source, e.Msg)
}

func (e *DataFormatError) Unwrap() error { return ErrDataFormat }
