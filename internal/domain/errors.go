package domain

// ConfigurationError reports an invalid entity state detected at construction
// or emission time
type ConfigurationError struct {
	EntityID string `json:"entity_id"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

// Error returns the configuration error message
func (e *ConfigurationError) Error() string {
	return e.Message
}

// NewConfigurationError creates a configuration error for an entity field
func NewConfigurationError(entityID, field, message string) *ConfigurationError {
	return &ConfigurationError{
		EntityID: entityID,
		Field:    field,
		Message:  message,
	}
}
