package email

import (
	"errors"
	"net"
	"net/textproto"
	"strings"
)

// ErrorKind classifies a dispatch failure. Raw transport detail stays
// server-side; only the kind's public message reaches the caller.
type ErrorKind string

const (
	KindRecipientNotConfigured ErrorKind = "recipient_not_configured"
	KindServiceUnavailable     ErrorKind = "service_unavailable"
	KindAuthentication         ErrorKind = "authentication_error"
	KindConnection             ErrorKind = "connection_error"
	KindTimeout                ErrorKind = "timeout"
	KindNetwork                ErrorKind = "network_error"
	KindUnknown                ErrorKind = "unknown"
)

// PublicMessage returns the user-facing description for a failure kind.
func (k ErrorKind) PublicMessage() string {
	switch k {
	case KindRecipientNotConfigured:
		return "Recipient email not configured"
	case KindServiceUnavailable:
		return "Email service temporarily unavailable"
	case KindAuthentication:
		return "Email service rejected the sender credentials"
	case KindConnection:
		return "Could not reach the email service"
	case KindTimeout:
		return "Email service timed out"
	case KindNetwork:
		return "Email delivery was interrupted"
	default:
		return "Failed to send email. Please try again later."
	}
}

// SendError wraps a transport error with its classification.
type SendError struct {
	Kind ErrorKind
	Err  error
}

func (e *SendError) Error() string {
	return e.Kind.PublicMessage()
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// KindOf extracts the classification from an error chain. Errors that did
// not come from the gateway report KindUnknown.
func KindOf(err error) ErrorKind {
	var se *SendError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// classify maps a transport error onto the failure taxonomy. SMTP reply
// codes are checked first, then network error types, then message text.
func classify(err error) *SendError {
	if err == nil {
		return nil
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch {
		case protoErr.Code == 530 || protoErr.Code == 534 || protoErr.Code == 535:
			return &SendError{Kind: KindAuthentication, Err: err}
		case protoErr.Code == 421 || protoErr.Code == 450 || protoErr.Code == 451:
			return &SendError{Kind: KindServiceUnavailable, Err: err}
		default:
			return &SendError{Kind: KindNetwork, Err: err}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &SendError{Kind: KindTimeout, Err: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &SendError{Kind: KindConnection, Err: err}
	}

	lower := strings.ToLower(err.Error())
	switch {
	case containsAny(lower, "username and password not accepted", "authentication failed", "invalid credentials", "auth"):
		return &SendError{Kind: KindAuthentication, Err: err}
	case containsAny(lower, "connection refused", "connection reset", "no such host", "broken pipe"):
		return &SendError{Kind: KindConnection, Err: err}
	case containsAny(lower, "timeout", "timed out", "deadline exceeded"):
		return &SendError{Kind: KindTimeout, Err: err}
	case containsAny(lower, "eof", "short write"):
		return &SendError{Kind: KindNetwork, Err: err}
	default:
		return &SendError{Kind: KindUnknown, Err: err}
	}
}

func containsAny(s string, patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
