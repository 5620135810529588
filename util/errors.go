package util

import "errors"

const (
	ERROR_EMPTY_LIST        = 101
	ERROR_NO_SUCCESSOR      = 102
	ERROR_BAD_STEP          = 211
	ERROR_NO_SCENARIO       = 212
	ERROR_BAD_OUTPUT_PATH   = 213
	ERROR_SCRIPT_FAILED     = 214
	ERROR_SCENARIO_MISMATCH = 215
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}

// StatusCodeOf returns the status code carried by err, or fallback when err carries none.
func StatusCodeOf(err error, fallback int) int {
	var withCode *ErrorWithCode
	if errors.As(err, &withCode) {
		return withCode.StatusCode
	}
	var withCodeValue ErrorWithCode
	if errors.As(err, &withCodeValue) {
		return withCodeValue.StatusCode
	}
	return fallback
}
