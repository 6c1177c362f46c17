package naming

import "errors"

// Default sentinel names of a named network.
const (
	DefaultSource = "SOURCE"
	DefaultSink   = "SINK"
)

var (
	// ErrUnknownNode is returned when an arc references a name the table
	// does not contain.
	ErrUnknownNode = errors.New("naming: node is not in the table")

	// ErrIndexOutOfRange is returned when a dense id has no name.
	ErrIndexOutOfRange = errors.New("naming: index outside the table")

	// ErrSameSentinel is returned when source and sink are the same name.
	ErrSameSentinel = errors.New("naming: source and sink must differ")

	// ErrDuplicateName is returned by TableOf for a repeated name.
	ErrDuplicateName = errors.New("naming: duplicate name")

	// ErrTooFewNames is returned by TableOf for fewer than two names.
	ErrTooFewNames = errors.New("naming: a table needs a source and a sink")
)
