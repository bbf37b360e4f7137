package domain

import (
	"fmt"
	"io/fs"
)

// FileNotFoundError reports a year file that does not exist on disk.
// It matches errors.Is(err, fs.ErrNotExist).
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("accident data file not found: %s", e.Path)
}

func (e *FileNotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// MissingColumnError reports a required column absent from a file header.
type MissingColumnError struct {
	Column string
	Path   string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: required column %s missing", e.Path, e.Column)
}

// InvalidYearError reports input that cannot be coerced to a reporting year.
type InvalidYearError struct {
	Value string
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("invalid year %q", e.Value)
}

// UnknownStateError reports a state code absent from a loaded year's data.
type UnknownStateError struct {
	State int
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("invalid STATE number: %d", e.State)
}
