// Package errs wraps the error library used across the service so call
// sites stay decoupled from it.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr to err so Is(err, markErr) holds while the
// original cause stays inspectable.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches target, including matches attached with
// Mark. Marks live outside the Unwrap chain, so the standard library's
// errors.Is cannot see them; sentinel checks must go through this.
func Is(err error, target error) bool {
	return cr.Is(err, target)
}
