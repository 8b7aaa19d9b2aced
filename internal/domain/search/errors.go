package search

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure a search can end with
type ErrorKind string

const (
	KindValidation        ErrorKind = "VALIDATION_ERROR"
	KindUpstreamAuth      ErrorKind = "UPSTREAM_AUTH_ERROR"
	KindUpstreamRateLimit ErrorKind = "UPSTREAM_RATE_LIMIT"
	KindUpstreamQuery     ErrorKind = "UPSTREAM_QUERY_ERROR"
	KindUpstreamGeneric   ErrorKind = "UPSTREAM_ERROR"
	KindNetwork           ErrorKind = "NETWORK_ERROR"
	KindUnexpected        ErrorKind = "UNEXPECTED_ERROR"
)

// MsgFilterRequired is returned when none of the filters is present
const MsgFilterRequired = "At least one filter (topic, stars, language) is required"

// Error is the domain error carried out of a search
type Error struct {
	Kind ErrorKind
	// Message is an upstream-provided message, if any
	Message string
	// StatusCode is the upstream HTTP status, zero when no response was received
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnexpected
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnexpected
}

// Predefined domain errors

func ErrNoFilter() *Error {
	return &Error{Kind: KindValidation, Message: MsgFilterRequired}
}

func ErrUpstreamStatus(statusCode int, message string) *Error {
	kind := KindUpstreamGeneric
	switch statusCode {
	case 401:
		kind = KindUpstreamAuth
	case 403:
		kind = KindUpstreamRateLimit
	case 422:
		kind = KindUpstreamQuery
	}
	return &Error{Kind: kind, Message: message, StatusCode: statusCode}
}

func ErrNetwork(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

func ErrUnexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Err: err}
}
