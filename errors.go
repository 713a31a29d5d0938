package sigfmt

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sigfmt/sigfmt/format"
	"github.com/sigfmt/sigfmt/sig"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	CodeInvalidArgument  ErrorCode = "invalid_argument"
	CodeNotFound         ErrorCode = "not_found"
	CodeMethodNotAllowed ErrorCode = "method_not_allowed"
	CodeRequestTooLarge  ErrorCode = "request_too_large"
	CodeUnimplemented    ErrorCode = "unimplemented"
	CodeInternal         ErrorCode = "internal"
)

var (
	// ErrNilType is returned when a type to format is absent.
	ErrNilType = format.ErrNilType
)

// UnknownKindError is returned for a descriptor of an unsupported kind.
type UnknownKindError = format.UnknownKindError

// Error is the classified error returned by the option and CLI layers.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new Error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// ExitCode maps an ErrorCode to a process exit status.
func (c ErrorCode) ExitCode() int {
	switch c {
	case CodeInvalidArgument:
		return 2
	case CodeUnimplemented:
		return 3
	default:
		return 1
	}
}

// HTTPStatus maps an ErrorCode to an HTTP status code.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeUnimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// AsError classifies err. It returns nil for a nil err.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var sfErr *Error
	if errors.As(err, &sfErr) {
		return sfErr
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return NewError(CodeRequestTooLarge, err.Error()).WithDetail("limit", maxErr.Limit)
	}

	var kindErr *UnknownKindError
	if errors.As(err, &kindErr) {
		return NewError(CodeUnimplemented, err.Error()).WithDetail("kind", int(kindErr.Kind))
	}

	if errors.Is(err, ErrNilType) || errors.Is(err, sig.ErrTooDeep) {
		return NewError(CodeInvalidArgument, err.Error())
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		details := make(map[string]any)
		messages := make([]string, 0, len(valErrs))
		for _, ve := range valErrs {
			msg := formatValidationError(ve)
			details[ve.Field()] = msg
			messages = append(messages, ve.Field()+": "+msg)
		}
		return &Error{
			Code:    CodeInvalidArgument,
			Message: strings.Join(messages, "; "),
			Details: details,
		}
	}

	if u, ok := err.(interface{ Unwrap() []error }); ok {
		errs := u.Unwrap()
		if len(errs) > 0 {
			first := AsError(errs[0])
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			return &Error{
				Code:    first.Code,
				Message: strings.Join(msgs, "; "),
				Details: first.Details,
			}
		}
	}

	return NewError(CodeInternal, err.Error())
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "bcp47_language_tag":
		return "must be a BCP 47 language tag"
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

func writeError(w http.ResponseWriter, e *Error, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Code.HTTPStatus())
	if err := encodeErrorResponse(w, e); err != nil {
		// Headers are already sent.
		logger.Error("failed to encode error response",
			slog.String("code", string(e.Code)),
			slog.String("message", e.Message),
			slog.Any("error", err))
	}
}
