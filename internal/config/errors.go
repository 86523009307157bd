package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every Validate failure.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrUnknownPreset is returned when a named preset does not exist.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// FieldError names the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfig, e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return ErrInvalidConfig }

func invalid(field, format string, args ...any) error {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ErrUnknownParam is returned by Set for a key it does not recognise.
var ErrUnknownParam = errors.New("config: unknown parameter")
