// Package userform holds the create and edit user screens.
//
// Both screens validate their input locally before any request is made; the
// first violated rule wins and its message is shown as the screen error.
// Server-side validation failures come back from the repository tagged with
// BODY_NOT_VALID and are narrowed to a field-specific sentence by
// ServerMessage.
package userform
