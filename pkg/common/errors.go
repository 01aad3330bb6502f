package common

import "errors"

// Core error taxonomy. Structural errors are returned to the caller without
// recovery; search-level infeasibility ("Unsolvable") is never one of these —
// it is a value the solvers return (Impossible, or a nil grid), not an error.
var (
	// ErrMalformedEndpoints indicates a colour has other than exactly two
	// endpoints. Raised by Grid.Endpoints and the loader. Fatal to the
	// current solve attempt.
	ErrMalformedEndpoints = errors.New("malformed endpoints")

	// ErrInvalidCharacter indicates the loader saw a character outside the
	// puzzle file format's fixed table.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrEndpointOverwrite indicates a mutator attempted to overwrite an
	// endpoint cell. This is a programmer error: it means a solver computed
	// a move it should never have produced.
	ErrEndpointOverwrite = errors.New("endpoint overwrite")
)
