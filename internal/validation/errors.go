// Package validation evaluates harvest measurement batches and photo sets
// against the data-quality rules and produces violation reports.
package validation

import (
	"errors"
	"fmt"

	"github.com/jonathan/harvest-validator/internal/types"
)

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// MissingFieldError is returned when a record lacks a field a check needs.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: missing required field %q", e.Index, e.Field)
}

// FieldTypeError is returned when a field is present but unusable.
type FieldTypeError struct {
	Index int
	Field string
	Value any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("record %d: field %q has unusable value %v (%T)", e.Index, e.Field, e.Value, e.Value)
}

// LocationFormatError is returned when a location cannot be read as a
// latitude/longitude pair.
type LocationFormatError struct {
	Index int
	Raw   any
	Cause error
}

func (e *LocationFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("record %d: malformed location %v: %v", e.Index, e.Raw, e.Cause)
	}
	return fmt.Sprintf("record %d: malformed location %v", e.Index, e.Raw)
}

func (e *LocationFormatError) Unwrap() error {
	return e.Cause
}

// DistanceError is returned when the distance between two records cannot be
// computed, e.g. a coordinate outside the valid range.
type DistanceError struct {
	Index   int
	Message string
}

func (e *DistanceError) Error() string {
	return fmt.Sprintf("error getting distances between farms: record %d: %s", e.Index, e.Message)
}

// EmptyInputError is returned when a check needs at least one record.
type EmptyInputError struct {
	Rule types.Rule
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s check requires at least one measurement", e.Rule)
}

// ErrorKind classifies err into a short stable identifier for reports.
func ErrorKind(err error) string {
	var (
		missing  *MissingFieldError
		badType  *FieldTypeError
		location *LocationFormatError
		distance *DistanceError
		empty    *EmptyInputError
	)
	switch {
	case errors.As(err, &missing):
		return "missing_field"
	case errors.As(err, &badType):
		return "field_type"
	case errors.As(err, &location):
		return "location_format"
	case errors.As(err, &distance):
		return "distance"
	case errors.As(err, &empty):
		return "empty_input"
	default:
		return "error"
	}
}
