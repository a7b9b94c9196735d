package internal

import "github.com/pkg/errors"

// Every failure the queries can report. Functions wrap these with context, so
// callers should compare with errors.Is rather than ==.
var (
	ErrInsufficientInput = errors.New("insufficient input")
	ErrDegenerateHull    = errors.New("degenerate hull")
	ErrNoIntersection    = errors.New("segments do not intersect")
	ErrDegenerate        = errors.New("degenerate segments")
	ErrNotImplemented    = errors.New("not implemented")
)
