package failure

import (
	"errors"
	"fmt"
)

// Kind classifies why a run could not produce a report.
type Kind int

const (
	KindUnknown  Kind = iota
	KindConfig        // conflicting or missing options
	KindNotFound      // input file or checks file absent
	KindFormat        // checks file or selector could not be parsed
	KindNetwork       // URL fetch failed
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not found"
	case KindFormat:
		return "format"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is an error tagged with a Kind. Msg is the one-line diagnostic shown
// to the operator; Err, when set, is the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error of the given kind without an underlying cause.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error of the given kind wrapping err.
func Wrap(kind Kind, err error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
