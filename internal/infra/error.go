package infra

import (
	"errors"

	"jetski-rentals/internal/pkg/errs"
)

type GatewayErrorKind string

// Error kinds for failures talking to external services.
const (
	KindNotFound    GatewayErrorKind = "NOT_FOUND"
	KindConflict    GatewayErrorKind = "CONFLICT"
	KindUnavailable GatewayErrorKind = "UNAVAILABLE"
	KindBadResponse GatewayErrorKind = "BAD_RESPONSE"
)

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

// WrapGatewayErr wraps an upstream failure with a kind tag. The kind
// defaults to UNAVAILABLE when omitted.
func WrapGatewayErr(msg string, err error, kinds ...GatewayErrorKind) error {
	kind := KindUnavailable
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
