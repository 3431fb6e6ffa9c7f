package settings

import "fmt"

// ConfigError reports a settings file that exists but cannot be used.
// Callers must halt; no value from a malformed file is ever returned.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("settings file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Remediation is the instruction shown to the user before exiting.
func (e *ConfigError) Remediation() string {
	return fmt.Sprintf("There was an error in %s\nEither fix the error or delete %s to generate a new one with default settings.", e.Path, e.Path)
}

// OverrideError reports a flag or environment override with a bad value.
type OverrideError struct {
	Name  string
	Value string
	Err   error
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("override %s=%q: %v", e.Name, e.Value, e.Err)
}

func (e *OverrideError) Unwrap() error { return e.Err }
