package utils

import (
	"fmt"
	"strconv"
)

// ParseIntDefault parses value as a base-10 int, returning defaultValue when
// value is empty. Malformed input is an error, never silently defaulted.
func ParseIntDefault(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", value, err)
	}

	return result, nil
}
