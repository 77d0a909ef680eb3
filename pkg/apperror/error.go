package apperror

import "net/http"

// Kind classifies an error for the data-access fallback policy.
// Callers decide retry vs. user-facing messaging based on the kind,
// rather than every operation reinventing its own failure handling.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound is a "no matching record" signal from a single-record query.
	KindNotFound
	// KindUnavailable means the backing store is unreachable or not initialized.
	KindUnavailable
	// KindTransient covers retryable remote failures (network, timeout).
	KindTransient
	// KindPermanent covers misconfiguration and malformed queries. These are
	// surfaced to callers instead of being degraded to defaults.
	KindPermanent
	// KindInvalid covers rejected caller input.
	KindInvalid
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindInvalid, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindInvalid, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindInvalid, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, KindInvalid, message, nil)
}

func Unavailable(err error) *AppError {
	return New(http.StatusServiceUnavailable, KindUnavailable, "Service temporarily unavailable", err)
}

func Transient(err error) *AppError {
	return New(http.StatusServiceUnavailable, KindTransient, "Temporary backend failure", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindPermanent, "Internal Server Error", err)
}

// KindOf extracts the kind from any error. Plain errors are KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr.Kind
	}
	return KindUnknown
}

// Degradable reports whether the error should be absorbed by the
// data-access layer and replaced with a type-appropriate default.
func Degradable(err error) bool {
	switch KindOf(err) {
	case KindUnavailable, KindTransient:
		return true
	default:
		return false
	}
}
