package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned by every writer when asked to persist zero rows.
var ErrEmptyDataset = errors.New("no rows to write")

// ConfigError reports a malformed specification, rejected at construction.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Msg
}

// UnsupportedTypeError reports a semantic type with no registered generator.
type UnsupportedTypeError struct {
	Type DataType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported data type: %s", e.Type)
}

// UnsupportedFormatError reports a format with no registered writer.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Format)
}

// GenerationFailedError wraps any failure during a generate run so callers
// see a single error kind for the whole pipeline. The cause stays reachable
// through errors.Unwrap.
type GenerationFailedError struct {
	Err error
}

func (e *GenerationFailedError) Error() string {
	return "data generation failed: " + e.Err.Error()
}

func (e *GenerationFailedError) Unwrap() error {
	return e.Err
}
