// Package errors defines typed console failures and their HTTP mapping.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies console failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	// KindConflict marks a request that no longer matches resource state,
	// such as deciding a document that has already left review.
	KindConflict Kind = "conflict"
	// KindRejected marks a business rejection reported by the backend
	// envelope. Its message is shown to staff verbatim.
	KindRejected    Kind = "rejected"
	KindUnavailable Kind = "unavailable"
)

// Error is a typed console failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	// Code is the status code reported by the backend, when one was given.
	Code int
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Backend builds an Error carrying the backend's message and status code.
func Backend(kind Kind, code int, message string) error {
	return Error{Kind: kind, Code: code, Message: strings.TrimSpace(message)}
}

// KindOf returns the error's kind, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// Is reports whether err is a typed Error of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// Message returns the typed error's message, or "" for untyped errors.
func Message(err error) string {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Message)
}

// BackendCode returns the backend status code carried by err, if any.
func BackendCode(err error) int {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return 0
	}
	return appErr.Code
}

// HTTPStatus maps an error to an HTTP status code.
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
	case KindConflict:
		return http.StatusConflict
	case KindRejected:
		return http.StatusUnprocessableEntity
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
