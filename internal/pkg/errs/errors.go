package errs

import cr "github.com/cockroachdb/errors"

// Fault classes. Concrete errors are marked with one of these so callers can
// map them without knowing every sentinel.
var (
	// malformed or missing input, reported to the user, no side effect
	ErrValidation = cr.New("validation fault")

	// the process environment is incomplete; fails before any network call
	ErrConfiguration = cr.New("configuration fault")

	// the outbound mail relay refused or dropped the message
	ErrTransport = cr.New("transport fault")
)
