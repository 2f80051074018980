package infra

import (
	"errors"

	"refreshing-booking/internal/pkg/errs"

	"go.uber.org/zap"
)

type TransportErrorKind string

type TransportError struct {
	Kind TransportErrorKind
	msg  string
	err  error // wrapped relay error
}

func (e TransportError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e TransportError) Unwrap() error {
	return e.err
}

// WrapTransportErr logs only the kind; the relay error may echo credentials.
func WrapTransportErr(logger *zap.Logger, kind TransportErrorKind, msg string, err error) error {
	logger.Error("Transport error: "+msg, zap.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return TransportError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind TransportErrorKind) bool {
	var e TransportError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindClientSetup TransportErrorKind = "CLIENT_SETUP"
	KindDial        TransportErrorKind = "DIAL"
	KindEnvelope    TransportErrorKind = "ENVELOPE"
	KindSend        TransportErrorKind = "SEND"
)
