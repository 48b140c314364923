package report

import (
	"errors"
	"fmt"
)

var (
	// ErrInputFormat matches every InputFormatError via errors.Is
	ErrInputFormat = errors.New("input format error")
	// ErrIO matches every IOError via errors.Is
	ErrIO = errors.New("io error")
)

// InputFormatError reports a missing sheet or column, or a value that
// cannot be coerced to the type its field needs.
type InputFormatError struct {
	Sheet  string
	Column string
	Row    int // 1-based source row, 0 when not tied to a row
	Value  string
	Reason string
}

func (e *InputFormatError) Error() string {
	msg := "input format: "
	if e.Sheet != "" {
		msg += fmt.Sprintf("sheet %q: ", e.Sheet)
	}
	if e.Column != "" {
		msg += fmt.Sprintf("column %q: ", e.Column)
	}
	if e.Row > 0 {
		msg += fmt.Sprintf("row %d: ", e.Row)
	}
	msg += e.Reason
	if e.Value != "" {
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	return msg
}

func (e *InputFormatError) Is(target error) bool {
	return target == ErrInputFormat
}

// IOError reports a workbook that could not be opened or saved
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
