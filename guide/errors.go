package guide

import "fmt"

// InvalidLayoutConfig reports a configuration that cannot be laid out.
// Nothing is rendered when it is returned.
type InvalidLayoutConfig struct {
	Field  string
	Reason string
}

func (e *InvalidLayoutConfig) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid layout config '%s': %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid layout config: %s", e.Reason)
}

// NewInvalidLayoutConfig creates an InvalidLayoutConfig with a formatted reason.
func NewInvalidLayoutConfig(field, format string, args ...interface{}) *InvalidLayoutConfig {
	return &InvalidLayoutConfig{Field: field, Reason: fmt.Sprintf(format, args...)}
}
