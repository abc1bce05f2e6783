package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryValueShape Category = "value-shape"
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
)

// Error is a structured error with a stable code and a rendered message.
type Error struct {
	// Kind is the enumerated error kind. Zero for ad-hoc errors.
	Kind Kind

	// Code is a unique error identifier (e.g., "E200").
	Code string

	// Category is the error type.
	Category Category

	// Message is the rendered, human-readable message.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Attr is the attribute key being processed when the error occurred.
	Attr string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind == 0 {
		return false
	}
	return t.Kind == e.Kind
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithAttr records the attribute key that triggered the error.
func (e *Error) WithAttr(key string) *Error {
	e.Attr = key
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// Newk creates an Error of the given kind with every value rendered as
// JSON into the message template.
func Newk(kind Kind, values ...any) *Error {
	t, ok := registry[kind]
	if !ok {
		return &Error{Kind: kind, Message: "Unknown error"}
	}
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = JSONValue(v)
	}
	return &Error{
		Kind:     kind,
		Code:     t.Code,
		Category: t.Category,
		Message:  fmt.Sprintf(t.Template, args...),
		Detail:   t.Detail,
	}
}

// NewValueShape reports that value cannot be written into attribute key.
func NewValueShape(value any, key string) *Error {
	t := registry[KindValueShape]
	return &Error{
		Kind:     KindValueShape,
		Code:     t.Code,
		Category: t.Category,
		Message:  fmt.Sprintf(t.Template, JSONValue(value), key),
		Detail:   t.Detail,
		Attr:     key,
	}
}

// NewServiceAttach reports that the named service failed to attach.
func NewServiceAttach(service string, cause error) *Error {
	t := registry[KindServiceAttach]
	return &Error{
		Kind:     KindServiceAttach,
		Code:     t.Code,
		Category: t.Category,
		Message:  fmt.Sprintf(t.Template, service),
		Detail:   t.Detail,
		Wrapped:  cause,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error of the given kind.
func FromError(err error, kind Kind) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	t := registry[kind]
	return &Error{
		Kind:     kind,
		Code:     t.Code,
		Category: t.Category,
		Message:  t.Template,
		Detail:   t.Detail,
		Wrapped:  err,
	}
}

// JSONValue renders v the way it appears inside error messages.
// Values encoding/json rejects fall back to %v.
func JSONValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// IsValueShape reports whether err is a value-shape error.
func IsValueShape(err error) bool {
	return hasCategory(err, CategoryValueShape)
}

// IsValidation reports whether err is a service validation error.
func IsValidation(err error) bool {
	return hasCategory(err, CategoryValidation)
}

func hasCategory(err error, c Category) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Category == c
}
