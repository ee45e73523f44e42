// Package userapi provides an HTTP implementation of the
// domain.UserServiceClient interface used by userdeck.
//
// The user service is a third-party REST API (dummyapi.io style) that stores
// user records and serves them in pages. Supported operations:
//   - Listing users one page at a time (GET /user?page=&limit=).
//   - Fetching a full record (GET /user/{id}).
//   - Creating a record (POST /user/create).
//   - Updating a record (PUT /user/{id}); email cannot change.
//   - Deleting a record (DELETE /user/{id}).
//
// Every request carries the app-id header and accepts a context for
// cancellation and deadlines. Non-2xx statuses come back as *StatusError with
// the method, full URL, status and raw body so callers can parse the service's
// error envelope.
package userapi
