package domains

// ConfigurationError reports deployment configuration that a resolver needs
// but that was not supplied.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Msg
}

// Is matches any ConfigurationError for the same field.
func (e *ConfigurationError) Is(target error) bool {
	other, ok := target.(*ConfigurationError)
	if !ok || e == nil || other == nil {
		return false
	}
	return e.Field == other.Field
}

var ErrMissingStageHost = &ConfigurationError{Field: "stage_host", Msg: "No stage host found"}

func missingStageHost() error {
	return &ConfigurationError{Field: ErrMissingStageHost.Field, Msg: ErrMissingStageHost.Msg}
}
