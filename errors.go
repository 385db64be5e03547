package modelcheck

import "errors"

// Configuration errors raised during rule construction. A broken rule would
// otherwise silently never fire or always fire, so constructors panic with
// these wrapped errors instead of accepting invalid parameters.
var (
	// ErrInvalidBound is raised when a length rule gets a non-positive bound.
	ErrInvalidBound = errors.New("length bound must be a positive integer")

	// ErrBadPattern is raised when a pattern rule gets an invalid regular expression.
	ErrBadPattern = errors.New("invalid pattern")

	// ErrEmptyMessage is raised when a rule that requires a fixed message gets none.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrNilPredicate is raised when a cross-field rule gets a nil predicate.
	ErrNilPredicate = errors.New("predicate must not be nil")

	// ErrNilModel is raised when a validator is requested for a nil model.
	ErrNilModel = errors.New("model must not be nil")
)
