package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// ErrorKind classifies a failure for callers that render a typed result.
type ErrorKind string

const (
	KindInvalidDate         ErrorKind = "InvalidDate"
	KindInvalidTimeFormat   ErrorKind = "InvalidTimeFormat"
	KindInvalidInterval     ErrorKind = "InvalidInterval"
	KindSlotConflict        ErrorKind = "SlotConflict"
	KindStorageError        ErrorKind = "StorageError"
	KindMissingParameter    ErrorKind = "MissingParameter"
	KindConfirmationIDTaken ErrorKind = "ConfirmationIdTaken"
	KindNotFound            ErrorKind = "NotFound"
	KindUnknownTool         ErrorKind = "UnknownTool"
	KindBadRequest          ErrorKind = "BadRequest"
	KindInternal            ErrorKind = "Internal"
)

type CustomError struct {
	StatusCode    int                    `json:"status_code"`
	Success       bool                   `json:"success"`
	Kind          ErrorKind              `json:"error_kind,omitempty"`
	ClientMessage string                 `json:"message"`
	Suggestion    string                 `json:"suggestion,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
	DevMessage    string                 `json:"dev_message,omitempty"`
	Locations     []Location             `json:"locations,omitempty"`
	Err           error                  `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.DevMessage, e.Err.Error())
	}
	return e.DevMessage
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithKind sets the failure kind and returns the same error for chaining.
func (e *CustomError) WithKind(kind ErrorKind) *CustomError {
	e.Kind = kind
	return e
}

func (e *CustomError) WithSuggestion(suggestion string) *CustomError {
	e.Suggestion = suggestion
	return e
}

func (e *CustomError) WithDetail(key string, value interface{}) *CustomError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// BuildNewCustomError wraps err with the caller location. Locations of a
// wrapped CustomError are carried over so the full trail is logged once.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	locations := []Location{getLocation(2)}

	var wrapped *CustomError
	if errors.As(err, &wrapped) {
		locations = append(locations, wrapped.Locations...)
	}

	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     locations,
		Err:           err,
		Kind:          KindInternal,
	}
}

// KindOf reports the kind of the first CustomError in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			Line:         0,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
