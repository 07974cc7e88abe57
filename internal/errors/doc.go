// Package errors provides structured error handling for the character API.
//
// Errors carry a code, a message, and optional metadata. Codes drive the
// caller-visible behavior: repositories return NotFound/AlreadyExists,
// orchestrators add InvalidArgument and FailedPrecondition, and anything
// unexpected surfaces as Internal. Helpers like IsNotFound let callers branch
// on codes without unwrapping.
package errors
