package internal

import "github.com/pkg/errors"

// Expected failures (too few points, parallel segments, ...) are returned as
// ordinary errors. Broken invariants deep inside an algorithm, like a hull
// scan that never closes, panic instead, and the public API recovers to
// convert them to an error.

type InvariantError struct {
	Err error
}

func (e InvariantError) Error() string {
	return e.Err.Error()
}

func (e InvariantError) Unwrap() error {
	return e.Err
}

// Panic with an InvariantError.
func fatalf(format string, args ...interface{}) {
	panic(InvariantError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if invariantError, ok := r.(InvariantError); ok {
			return invariantError
		}
		panic(r)
	}
	return nil
}
