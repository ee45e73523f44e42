// Package devserver is a local stand-in for the dummyapi.io user service.
//
// It serves the same five endpoints under /data/v1 with the same JSON shapes
// and error envelopes, so the client can be developed and tested without the
// hosted API.
//
// HTTP API
//
//	GET    /user?page=P&limit=L   page of previews, newest registration first
//	GET    /user/{id}             full record
//	POST   /user/create           create; the server assigns id and dates
//	PUT    /user/{id}             partial update; email cannot change
//	DELETE /user/{id}             delete; responds {"id": "..."}
//
// Every request needs an app-id header. Failures respond with
// {"error": "<CODE>"} and, for BODY_NOT_VALID, a "data" object of per-field
// reasons.
//
// Records live behind the Store interface: MemoryStore for development and
// tests, PostgresStore when a database URL is configured.
package devserver
