package match3

import "errors"

var (
	// ErrOutOfBounds is returned when a cell lies outside the board.
	ErrOutOfBounds = errors.New("match3: cell out of bounds")

	// ErrEmptyCandidateSet is returned when the factory has no kind to pick from.
	ErrEmptyCandidateSet = errors.New("match3: no token kind available")

	// ErrInvalidTransition is returned when input arrives in a phase that cannot accept it.
	ErrInvalidTransition = errors.New("match3: invalid transition")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("match3: invalid config")
)
