// Package ingestion discovers harvest submission files in a data directory
// and turns them into measurement sets and image identifiers.
package ingestion

import "fmt"

// DirectoryError is returned when the data directory is missing or is not a
// directory.
type DirectoryError struct {
	Path  string
	Cause error
}

func (e *DirectoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("data directory error: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("data directory error: %s", e.Path)
}

func (e *DirectoryError) Unwrap() error {
	return e.Cause
}

// FilesError is returned when the data directory holds no files at all or
// cannot be walked.
type FilesError struct {
	Path  string
	Cause error
}

func (e *FilesError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parsing directory files error: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("parsing directory files error: %s", e.Path)
}

func (e *FilesError) Unwrap() error {
	return e.Cause
}

// JSONError is returned when a measurement file cannot be read or does not
// contain a harvest_measurements array of objects.
type JSONError struct {
	Path    string
	Message string
	Cause   error
}

func (e *JSONError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error parsing json file %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("error parsing json file %s: %s", e.Path, e.Message)
}

func (e *JSONError) Unwrap() error {
	return e.Cause
}

// ImageError is returned for a file that is not one of the accepted image
// formats.
type ImageError struct {
	Path string
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("error processing image file: %s", e.Path)
}
