package point

import "errors"

var (
	// ErrMalformedLine indicates a line that is not three comma-separated unsigned integers.
	ErrMalformedLine = errors.New("point: malformed coordinate line")
	// ErrCoordinateRange indicates a coordinate larger than MaxCoordinate.
	ErrCoordinateRange = errors.New("point: coordinate out of range")
)
