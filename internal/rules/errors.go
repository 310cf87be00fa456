package rules

import "fmt"

// ConfigurationError reports an invalid rule set, override or strategy
// table. It always aborts simulation setup before any hand is played.
type ConfigurationError struct {
	Subject string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Subject, e.Reason)
}

// NewConfigurationError builds a ConfigurationError for the given subject.
func NewConfigurationError(subject, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}
