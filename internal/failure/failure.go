// Package failure holds the error taxonomy shared by acquisition, analysis and
// the retry loop that wraps them.
package failure

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unknown Kind = iota
	NotFound
	Forbidden
	UpstreamUnavailable
	MalformedData
	NetworkUnreachable
	EmptyActivity
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Forbidden:
		return "forbidden"
	case UpstreamUnavailable:
		return "upstream_unavailable"
	case MalformedData:
		return "malformed_data"
	case NetworkUnreachable:
		return "network_unreachable"
	case EmptyActivity:
		return "empty_activity"
	default:
		return "unknown"
	}
}

// Retryable reports whether re-running the whole fetch may succeed.
func (k Kind) Retryable() bool {
	switch k {
	case UpstreamUnavailable, MalformedData, NetworkUnreachable:
		return true
	default:
		return false
	}
}

// Error carries a Kind plus whatever context was known where it was raised.
// Status is the last upstream HTTP status, 0 when no response was received.
type Error struct {
	Kind     Kind
	Username string
	Status   int
	Err      error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Username != "" {
		msg += " (u/" + e.Username + ")"
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" status %d", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// WithUsername returns a copy of err tagged with the username, or err itself
// when it is not a *Error.
func WithUsername(err error, username string) error {
	var fe *Error
	if !errors.As(err, &fe) {
		return err
	}
	cp := *fe
	cp.Username = username
	return &cp
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

func IsRetryable(err error) bool {
	return KindOf(err).Retryable()
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
