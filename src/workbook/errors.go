package workbook

import (
	"errors"
	"fmt"
)

// Kind classifies workbook I/O failures.
type Kind int

const (
	KindFileNotFound Kind = iota + 1
	KindFileRead
	KindFileWrite
)

var (
	ErrFileNotFound = errors.New("workbook not found")
	ErrFileRead     = errors.New("workbook could not be read")
	ErrFileWrite    = errors.New("workbook could not be written")
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "FileNotFound"
	case KindFileRead:
		return "FileReadError"
	case KindFileWrite:
		return "FileWriteError"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindFileNotFound:
		return ErrFileNotFound
	case KindFileRead:
		return ErrFileRead
	case KindFileWrite:
		return ErrFileWrite
	default:
		return nil
	}
}

// Error carries the failing path and the underlying cause.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match the package sentinels by kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf reports the Kind of err, or 0 if err is not a workbook error.
func KindOf(err error) Kind {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind
	}
	return 0
}
