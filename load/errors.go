package load

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrOrder         = errors.New("dates not in ascending order")
)

// ParseError reports the first invalid field found while reading a
// file. Row counts from 1 for the header row.
type ParseError struct {
	File  string
	Row   int
	Field string
	Value string
	Err   error
}

func (e ParseError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Value == "" {
		return fmt.Sprintf("%s:%d: %s: %s", file, e.Row, e.Field, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s %q: %s", file, e.Row, e.Field, e.Value, e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}
