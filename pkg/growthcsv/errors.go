package growthcsv

import (
	"errors"
	"fmt"
)

// ErrEmptyResult indicates the grid parsed structurally but produced
// zero output rows.
var ErrEmptyResult = errors.New("no valid OD data extracted: check file layout")

// ConversionError represents a failure while reading the input
// workbook or writing the output file.
type ConversionError struct {
	Stage string // "read", "write"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed (%s): %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage string, err error) *ConversionError {
	return &ConversionError{Stage: stage, Err: err}
}
