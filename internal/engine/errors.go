package engine

import "fmt"

// ConfigurationError marks a catalog that can never be satisfied: cyclic or
// dangling dependencies, duplicate ids, malformed options. A catalog version
// that produces one must not be served.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("catalog configuration error: %s", e.Reason)
}

func newConfigErrorf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// RangeError marks a value outside the 0-100 maturity scale. It is fatal to
// the single computation that saw it, never to the process. Values are
// reported, not clamped.
type RangeError struct {
	What  string
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value out of range: %s = %v (expected 0-100)", e.What, e.Value)
}
