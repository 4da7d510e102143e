// Package errors defines typed web failures and their HTTP status mapping.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies a failure for HTTP mapping.
type Kind string

const (
	KindUnknown         Kind = "unknown"
	KindInvalidInput    Kind = "invalid_input"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindTooManyRequests Kind = "too_many_requests"
	KindUnavailable     Kind = "unavailable"
)

// Error is a typed web failure. Key names the localized message shown to
// users; Message is for logs.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Cause   error
}

func (e Error) Error() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	case e.Message != "":
		return e.Message
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return string(e.Kind)
	}
}

func (e Error) Unwrap() error {
	return e.Cause
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap attaches kind and key to cause.
func Wrap(kind Kind, key string, cause error) error {
	if cause == nil {
		return nil
	}
	return Error{Kind: kind, Key: strings.TrimSpace(key), Cause: cause}
}

// KindOf returns the kind of the first typed Error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// LocalizationKey returns the localization key when err carries one.
func LocalizationKey(err error) string {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) {
		return ""
	}
	return appErr.Key
}

// HTTPStatus maps err to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
