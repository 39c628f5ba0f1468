package main

import (
	"errors"
	"fmt"
	"os"
)

// syncError is a wrapper around an error that adds additional context.
type syncError struct {
	err    error
	reason string
}

func (m syncError) Error() string {
	return m.err.Error()
}

func (m syncError) Reason() string {
	return m.reason
}

func (m syncError) Unwrap() error {
	return m.err
}

func printError(err error) {
	s := stderrStyles()
	var se syncError
	if errors.As(err, &se) {
		fmt.Fprintln(os.Stderr, s.ErrPadding.Render(s.ErrorHeader.String(), se.Reason()))
		fmt.Fprintln(os.Stderr, s.ErrPadding.Render(s.ErrorDetails.Render(se.Error())))
		return
	}
	fmt.Fprintln(os.Stderr, s.ErrPadding.Render(s.ErrorHeader.String(), err.Error()))
}

// newUserErrorf is a user-facing error.
// this function is mostly to avoid linters complain about errors starting with a capitalized letter.
func newUserErrorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}
