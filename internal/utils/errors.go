package utils

import (
	"errors"
	"fmt"
)

// UsageError marks a caller mistake (bad arguments, unknown keys). Handlers
// report it back on the invoking surface instead of treating it as a failure.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

func Usagef(format string, args ...any) error {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

func IsUsage(err error) bool {
	var usage *UsageError
	return errors.As(err, &usage)
}
