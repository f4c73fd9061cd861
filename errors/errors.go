package errors

import (
	"errors"

	"github.com/cenkalti/backoff/v4"
)

type unretriableError struct{ error }

// Unwrap returns the wrapped error, allowing for interoperability with
// the errors stdlib package.
func (e unretriableError) Unwrap() error {
	return e.error
}

// Unretriable returns an error that should be treated as final. The pipeline
// uses this for whole-video failures (missing chunk, source write error) where
// retrying cannot help. It is also compatible with the backoff library,
// meaning that any retry logic will stop if it finds an unretriable error.
func Unretriable(err error) error {
	return backoff.Permanent(unretriableError{err})
}

// IsUnretriable tests whether the given error, or any error in its chain, has
// been marked as unretriable.
func IsUnretriable(err error) bool {
	return errors.As(err, &unretriableError{})
}
