package schema

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a schema or compile failure.
type ErrorCode string

const (
	// CodeSchemaParse indicates the input document is not a well-formed
	// settings schema.
	CodeSchemaParse ErrorCode = "SCHEMA_PARSE"

	// CodeMissingTier indicates an entry lacks the mandatory dev tier.
	CodeMissingTier ErrorCode = "MISSING_TIER"

	// CodeUnsupportedValue indicates a property value has a shape the
	// compiler does not support.
	CodeUnsupportedValue ErrorCode = "UNSUPPORTED_VALUE"

	// CodeDuplicateDesignator indicates two entries resolve to the same
	// uppercased name.
	CodeDuplicateDesignator ErrorCode = "DUPLICATE_DESIGNATOR"
)

// Error is a classified error with schema context. Every failure produced by
// the loading and compilation pipeline is an *Error; all failures are fatal
// for the compile that produced them, nothing is retried.
type Error struct {
	// Code is the failure classification.
	Code ErrorCode

	// Message is the human-readable error message.
	Message string

	// Entry is the designator of the entry that caused the error, if known.
	Entry string

	// Path is the property path within the entry, if known.
	Path string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Entry != "" {
		msg += fmt.Sprintf(" (entry=%s)", e.Entry)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error equality checking for errors.Is. Two errors match when
// their codes match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithEntry adds entry context to an error.
func (e *Error) WithEntry(designator string) *Error {
	e.Entry = designator
	return e
}

// NewSchemaParseError creates a new parse-classified error.
func NewSchemaParseError(message string, err error) *Error {
	return &Error{
		Code:    CodeSchemaParse,
		Message: message,
		Err:     err,
	}
}

// NewMissingTierError creates a new error for an entry without a dev tier.
func NewMissingTierError(entry string) *Error {
	return &Error{
		Code:    CodeMissingTier,
		Message: fmt.Sprintf("entry has no %q tier; %q is mandatory", TierDev, TierDev),
		Entry:   entry,
	}
}

// NewUnsupportedValueError creates a new error for a value shape the compiler
// does not support.
func NewUnsupportedValueError(path string, value interface{}) *Error {
	return &Error{
		Code:    CodeUnsupportedValue,
		Message: fmt.Sprintf("unsupported value of type %T", value),
		Path:    path,
	}
}

// NewDuplicateDesignatorError creates a new error for two entries resolving
// to the same uppercased name.
func NewDuplicateDesignatorError(section, designator string) *Error {
	return &Error{
		Code:    CodeDuplicateDesignator,
		Message: fmt.Sprintf("duplicate designator %q in section %q", designator, section),
		Entry:   designator,
	}
}

// IsSchemaParse returns true if the error is a parse failure.
func IsSchemaParse(err error) bool {
	return hasCode(err, CodeSchemaParse)
}

// IsMissingTier returns true if the error is a missing dev tier failure.
func IsMissingTier(err error) bool {
	return hasCode(err, CodeMissingTier)
}

// IsUnsupportedValue returns true if the error is an unsupported value failure.
func IsUnsupportedValue(err error) bool {
	return hasCode(err, CodeUnsupportedValue)
}

// IsDuplicateDesignator returns true if the error is a duplicate designator
// failure.
func IsDuplicateDesignator(err error) bool {
	return hasCode(err, CodeDuplicateDesignator)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
