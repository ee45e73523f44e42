// Package store provides file-based persistence for the client's local state.
//
// Files live under the configured home directory and are replaced atomically
// (temp file then rename). All stores are safe for concurrent use.
//
// The package includes stores for:
//   - The service app-id, encrypted with a passphrase (CredentialFileStore)
//   - Client preferences such as base URL and page size (SettingsFileStore)
package store
