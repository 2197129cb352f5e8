package core

import "fmt"

// ConfigurationError reports a problem with how the renderer was asked to
// run: a malformed CLI flag, an invalid aspect ratio, an unreadable
// texture path. It is always caught at the CLI layer, never propagated
// into the render itself.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// NewConfigurationError formats a ConfigurationError.
func NewConfigurationError(format string, args ...interface{}) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}
