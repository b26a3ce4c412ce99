package movavg

import "errors"

var (
	// ErrNilSource is returned when a source series or collection is nil.
	ErrNilSource = errors.New("movavg: source must not be nil")

	// ErrInvalidArgument is returned when a numeric parameter is out of
	// domain. Returned errors wrap it with the offending value.
	ErrInvalidArgument = errors.New("movavg: invalid argument")

	// ErrMissingValue is returned by AverageByPoints when the source
	// contains a missing value, which that algorithm cannot skip over.
	ErrMissingValue = errors.New("movavg: missing value")
)
