// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (domain records, wire DTOs, the Result type) and
// contracts (repository, use cases, transport client, local stores) only.
package domain
