// Package securedrop is a client for the SecureDrop journalist API.
//
// # Overview
//
// The package provides:
//  1. A Client that exchanges journalist credentials for a session token at
//     construction time and dispatches typed, authenticated requests for
//     every API operation: listing and fetching sources and submissions,
//     downloading encrypted payloads, posting encrypted replies, starring,
//     and deletion.
//  2. Credential types in the auth subpackage: a static one-time code, or a
//     TOTP/HOTP secret from which codes are regenerated per attempt.
//  3. Wire types in the data subpackage, including Reply with its PGP armor
//     framing check.
//
// # Error Handling
//
// Every failure is returned to the immediate caller as a typed error from
// the apierror subpackage; nothing is logged or swallowed. Match sentinel
// conditions with errors.Is (apierror.ErrAuth, ErrNetwork, ErrServer,
// ErrUnknown, ErrIO) and payload-carrying conditions with errors.As
// (*apierror.ClientError, *apierror.ProgrammingError). The client never
// retries on its own; after an authentication failure the caller decides
// when to call Reauthorize with fresh credentials.
//
// # Concurrency & Contexts
//
// A Client is not safe for concurrent use: Reauthorize replaces the session
// token with no internal locking, so callers that need parallelism must
// serialize calls or use one Client per worker. All operations accept a
// context.Context and honor cancellation. The client enforces no timeouts of
// its own; configure them on the injected *http.Client or per call via the
// context.
package securedrop
