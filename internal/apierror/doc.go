// Package apierror maps user service failures to user-facing messages.
//
// The service reports errors as a JSON envelope {"error": "<CODE>"} with an
// optional per-field "data" object. Parse reads that envelope, FromStatus
// derives a code when the body carries none, and Message returns the fixed
// sentence shown to the user for each code. Describe accepts whatever raw
// string an operation produced (an envelope, "CODE: detail", or a plain
// phrase such as "User not found") and resolves it to a sentence.
package apierror
