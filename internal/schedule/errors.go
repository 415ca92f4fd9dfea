package schedule

// ConfigurationError reports missing or inconsistent business-hours
// configuration. It is a deployment bug, not user input.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func NewConfigurationError(msg string) *ConfigurationError {
	return &ConfigurationError{msg: msg}
}

func configurationError(msg string) error {
	return NewConfigurationError(msg)
}

// InvalidDateError reports a date string the caller supplied that cannot be
// interpreted as a calendar date.
type InvalidDateError struct {
	msg string
}

func (e *InvalidDateError) Error() string {
	return e.msg
}

func NewInvalidDateError(msg string) *InvalidDateError {
	return &InvalidDateError{msg: msg}
}

func invalidDateError(msg string) error {
	return NewInvalidDateError(msg)
}

// InvalidIntervalError reports a requested time window with a non-positive
// duration or missing start.
type InvalidIntervalError struct {
	msg string
}

func (e *InvalidIntervalError) Error() string {
	return e.msg
}

func NewInvalidIntervalError(msg string) *InvalidIntervalError {
	return &InvalidIntervalError{msg: msg}
}

func invalidIntervalError(msg string) error {
	return NewInvalidIntervalError(msg)
}
