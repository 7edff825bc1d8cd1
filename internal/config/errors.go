package config

import "fmt"

// MissingConfigError means a config file named via C42FMT_CONFIG does not
// exist. The default .c42fmt.yml being absent is not an error.
type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("config file missing: %s", e.Path)
}

type InvalidYAMLError struct {
	Path    string
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error { return e.Wrapped }

type InvalidTimeoutError struct {
	Path  string
	Value int
}

func (e *InvalidTimeoutError) Error() string {
	return fmt.Sprintf("%s property formatterTimeoutSeconds has invalid value %d: must not be negative", e.Path, e.Value)
}
