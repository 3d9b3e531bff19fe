package table

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLoad matches every failure to read a sample file.
	ErrLoad = errors.New("load error")
	// ErrMissingColumn matches lookups of columns absent from a table.
	ErrMissingColumn = errors.New("missing column")
)

// LoadError reports a file that does not exist or is not valid tabular data.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "load error"
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// MissingColumnError names a required column that the table does not have.
type MissingColumnError struct {
	Name      string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }
