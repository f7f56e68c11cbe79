package airchart

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty     = errors.New("empty series")
	ErrDuplicate = errors.New("duplicate key")
	ErrColumn    = errors.New("column not found")
	ErrPartial   = errors.New("chart partially built")
)

type ConfigError struct {
	Component string
	Reason    string
	Err       error
}

func configError(component, reason string, err error) error {
	return ConfigError{
		Component: component,
		Reason:    reason,
		Err:       err,
	}
}

func (e ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Component, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Component, e.Reason)
}

func (e ConfigError) Unwrap() error {
	return e.Err
}
