package services

import (
	"errors"
	"fmt"
)

// ConfigError marks an employee whose calendar or daily-hour target cannot
// be resolved. Every downstream ratio would be silently wrong, so it aborts
// the whole batch instead of producing a partial result.
type ConfigError struct {
	EmployeeID uint
	Reason     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("workload configuration error for employee %d: %s", e.EmployeeID, e.Reason)
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
