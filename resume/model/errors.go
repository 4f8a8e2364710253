package model

import "errors"

// MissingFieldError reports a required field absent from the input record.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// IsMissingField reports whether err is (or wraps) a MissingFieldError.
func IsMissingField(err error) bool {
	var missing MissingFieldError
	return errors.As(err, &missing)
}
