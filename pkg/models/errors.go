package models

import (
	"errors"
	"fmt"
)

// Kind classifies the failures of loading, resolving and saving ledgers.
type Kind int

const (
	KindUnknown Kind = iota
	NotFound
	NotUnique
	InvalidFilename
	ParseFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case NotUnique:
		return "not unique"
	case InvalidFilename:
		return "invalid filename"
	case ParseFailure:
		return "parse failure"
	default:
		return "unknown"
	}
}

// Error is a failure of a given kind. Name is the account prefix or filename
// the failure is about, when there is one.
type Error struct {
	Kind Kind
	Name string
	Err  error
}

// Sentinels for errors.Is. Any *Error of the same kind matches them.
var (
	ErrNotFound        = &Error{Kind: NotFound}
	ErrNotUnique       = &Error{Kind: NotUnique}
	ErrInvalidFilename = &Error{Kind: InvalidFilename}
	ErrParseFailure    = &Error{Kind: ParseFailure}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Name != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Name)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
