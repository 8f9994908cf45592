// pkg/cverr/errors.go
//
// Failure taxonomy for certificate deployment. Every failure the issuance
// engine can see carries exactly one Kind so that configuration mistakes,
// credential problems and store-side rejections stay distinguishable.

package cverr

import (
	"errors"
	"fmt"

	cerr "github.com/cockroachdb/errors"
)

// Kind classifies a deployment failure.
type Kind int

const (
	// KindConfiguration - contradictory or missing connection settings, surfaced at startup
	KindConfiguration Kind = iota
	// KindAuthentication - credentials rejected or readiness gate failed
	KindAuthentication
	// KindAuthorization - token valid but lacks capability on the target path
	KindAuthorization
	// KindIO - certificate, key or chain file unreadable
	KindIO
	// KindCertificateParse - malformed PEM or X.509 input
	KindCertificateParse
	// KindConnectivity - network or TLS failure reaching the store
	KindConnectivity
	// KindStoreWrite - store-side validation failure during the write
	KindStoreWrite
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindAuthentication:
		return "authentication error"
	case KindAuthorization:
		return "authorization error"
	case KindIO:
		return "io error"
	case KindCertificateParse:
		return "certificate parse error"
	case KindConnectivity:
		return "connectivity error"
	case KindStoreWrite:
		return "store write error"
	default:
		return "unknown error"
	}
}

// Error pairs a failure Kind with its message and cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a classified error with no underlying cause.
func New(kind Kind, message string) error {
	return cerr.WithStack(&Error{Kind: kind, Message: message})
}

// Newf creates a classified error from a format string.
func Newf(kind Kind, format string, args ...interface{}) error {
	return cerr.WithStack(&Error{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Wrap classifies an underlying error.
func Wrap(kind Kind, err error, message string) error {
	return cerr.WithStack(&Error{Kind: kind, Message: message, Cause: err})
}

// KindOf returns the Kind carried anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// HasKind reports whether err's chain carries the given Kind.
func HasKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
