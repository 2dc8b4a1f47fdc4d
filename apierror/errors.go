// Package apierror defines the errors returned by the SecureDrop API client.
//
// Conditions without interesting payloads are sentinel values matched with
// errors.Is (ErrAuth, ErrNetwork, ErrServer, ErrUnknown, ErrIO). Conditions
// that carry data the caller reads are typed errors matched with errors.As
// (ClientError, ProgrammingError). Errors may be wrapped with additional
// context; always match with errors.Is/errors.As rather than equality.
package apierror

import "errors"

var (
	// ErrAuth reports a failed credential exchange: the client holds no
	// valid session token and resource calls are rejected until a
	// reauthorization succeeds.
	ErrAuth = errors.New("invalid credentials")

	// ErrNetwork reports a transport-level failure where no HTTP response
	// was received at all. The call may be retried.
	ErrNetwork = errors.New("network error")

	// ErrServer reports a 5xx response. The call may be retried later.
	ErrServer = errors.New("internal server error")

	// ErrUnknown reports a response that fits no recognized bucket.
	ErrUnknown = errors.New("unknown error")

	// ErrIO reports a failure while streaming a download into the
	// caller-supplied sink.
	ErrIO = errors.New("io error")
)

// ClientError is a 4xx rejection carrying the server's message. Typically not
// retryable without changing the request.
type ClientError struct {
	Message string
}

func (e *ClientError) Error() string {
	return "client error: " + e.Message
}

// ProgrammingError reports a response that does not match the expected wire
// schema. It indicates contract drift between client and server; if it
// surfaces, please report it.
type ProgrammingError struct {
	Detail string
}

func (e *ProgrammingError) Error() string {
	return "programming error (this is a bug): " + e.Detail
}
