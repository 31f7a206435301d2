package varint

import (
	"errors"
	"io"
)

var (
	ErrEndOfInput = errors.New("truncated varint")
	ErrOverflow   = errors.New("varint overflows target width")
)

// IOError reports a failure of the underlying byte source or sink.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "varint " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func readError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrEndOfInput
	}
	return &IOError{Op: "read", Err: err}
}

func writeError(err error) error {
	return &IOError{Op: "write", Err: err}
}
