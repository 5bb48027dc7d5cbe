// Package errs narrows the cockroachdb/errors surface to the three
// operations the rest of the codebase needs: creating sentinels,
// wrapping causes, and marking a cause with a sentinel so errors.Is
// matches it at the transport layer.
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

// Mark attaches markErr to err's chain. Join rather than cr.Mark:
// the marker must be reachable through Unwrap so the transport's
// stdlib errors.Is checks match it, not only cockroachdb's own Is.
// A nil err degenerates to the marker itself so call sites never
// return nil by accident.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Join(err, markErr)
}
