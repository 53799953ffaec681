package generator

import "errors"

// Domain errors for document generation. The first four are
// user-correctable input errors; anything else that surfaces from
// generation is a fault.
var (
	// ErrNoItems means the interpreted item sequence was empty after
	// parsing and filtering.
	ErrNoItems = errors.New("no valid line items parsed")

	ErrMissingClientCompany = errors.New("client company is required")
	ErrMissingClientPerson  = errors.New("client person is required")

	// ErrNoEntries guards the builder against an empty priced result.
	ErrNoEntries = errors.New("document has no entries")
)

// IsUserError reports whether err is a user-correctable input error,
// as opposed to a canvas or I/O fault.
func IsUserError(err error) bool {
	return errors.Is(err, ErrNoItems) ||
		errors.Is(err, ErrMissingClientCompany) ||
		errors.Is(err, ErrMissingClientPerson) ||
		errors.Is(err, ErrNoEntries)
}
