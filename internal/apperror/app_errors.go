package apperror

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrGameFinished  = errors.New("game is already finished")
	ErrOutputFailure = errors.New("could not write to output")
	ErrNilArgument   = errors.New("required argument is nil")
)
