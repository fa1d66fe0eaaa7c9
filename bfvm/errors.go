package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrInputUnavailable = errors.New("input unavailable")
	ErrUnmatchedLoopEnd = errors.New("loop end without loop start")
	ErrUnclosedLoop     = errors.New("source ended inside a loop")
	ErrStepLimit        = errors.New("step limit exceeded")
	ErrDepthLimit       = errors.New("loop depth limit exceeded")
)

// Error records where in the program a fatal error happened.
type Error struct {
	Op      Op
	Cursor  int
	Pointer int
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at instruction %d (pointer %d): %v", e.Op, e.Cursor, e.Pointer, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (v *VM) fail(op Op, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{
		Op:      op,
		Cursor:  v.Cursor,
		Pointer: v.Pointer,
		Err:     err,
	}
}
