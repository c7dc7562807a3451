package errors

import (
	"errors"
	"fmt"
)

// Kind discriminates failure causes so callers can branch programmatically
// instead of parsing message text.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindRemote       Kind = "remote"
	KindNotFound     Kind = "not_found"
)

// Error is the single error shape crossing package boundaries.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid reports a locally detected bad input. No remote call was made.
func Invalid(op, message string) error {
	return &Error{Kind: KindInvalidInput, Op: op, Message: message}
}

// NotFound reports an entity that does not exist.
func NotFound(op, message string) error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

// Remote wraps a failure surfaced by the remote service, keeping the
// underlying cause in the chain.
func Remote(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindRemote, Op: op, Message: "remote service error", Err: err}
}

// Wrap wraps err with an additional message, preserving its kind.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindOf(err), Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in the chain, or KindRemote
// for an untagged error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRemote
}

func is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsInvalidInput reports whether err carries KindInvalidInput.
func IsInvalidInput(err error) bool {
	return is(err, KindInvalidInput)
}

// IsNotFound reports whether err carries KindNotFound.
func IsNotFound(err error) bool {
	return is(err, KindNotFound)
}

// IsRemote reports whether err carries KindRemote.
func IsRemote(err error) bool {
	return is(err, KindRemote)
}

// GetMessage returns the outermost message for user display.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
