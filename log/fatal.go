package log

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Errors that stop the process on startup.
var (
	ErrMalformedConfig = newFatalError("ERR_MALFORMED_CONFIG", "config file is malformed")
	ErrBadFlags        = newFatalError("ERR_BAD_FLAGS", "bad CLI flags")
	ErrInvalidConfig   = newFatalError("ERR_INVALID_CONFIG", "invalid config")
	ErrStartMetrics    = newFatalError("ERR_START_METRICS", "could not start metrics server")
)

// FatalError carries a stable code that can be matched by process supervisors.
type FatalError struct {
	Code   string
	Text   string
	Reason error
}

func newFatalError(code, text string) func(reason error) *FatalError {
	return func(reason error) *FatalError {
		return &FatalError{
			Code:   code,
			Text:   text,
			Reason: reason,
		}
	}
}

func (fe *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", fe.Text, fe.Reason)
}

func (fe *FatalError) Unwrap() error {
	return fe.Reason
}

// MarshalLogObject implements logging encoder for FatalError.
func (fe *FatalError) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("code", fe.Code)
	encoder.AddString("error", fe.Error())
	return nil
}
