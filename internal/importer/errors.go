package importer

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the upload holds no data rows after the header.
var ErrEmptyInput = errors.New("no data found in file")

// DecodeError reports an upload whose bytes could not be read as text or as a workbook.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode upload: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// ParseIssue is one problem reported by the table parser.
type ParseIssue struct {
	Line    int    `json:"line"`
	Column  int    `json:"column,omitempty"`
	Message string `json:"message"`
}

// ParseError reports a malformed table, carrying every issue the parser found.
type ParseError struct {
	Issues []ParseIssue
}

func (e *ParseError) Error() string {
	if len(e.Issues) == 0 {
		return "csv parsing error"
	}
	return fmt.Sprintf("csv parsing error: line %d: %s (%d issue(s))", e.Issues[0].Line, e.Issues[0].Message, len(e.Issues))
}

// NoValidRowsError is returned when every data row was rejected.
type NoValidRowsError struct {
	Rejections []Rejection
}

func (e *NoValidRowsError) Error() string {
	return fmt.Sprintf("no valid students found: %d row(s) rejected", len(e.Rejections))
}

// StoreError wraps a failure of the batch write. Nothing from the batch was persisted.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store batch: %v", e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }
