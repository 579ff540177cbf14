package options

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is matched by every ConfigError.
var ErrInvalidOption = errors.New("invalid option")

// ConfigError reports an options value that cannot be sent as-is.
type ConfigError struct {
	Option string
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: invalid %s=%v: %s", e.Option, e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidOption) true.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidOption
}
