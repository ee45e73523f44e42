package store

import (
	"crypto/sha256"
	"encoding/hex"
	"runtime"
)

// Fingerprint returns a short hex digest of an app-id so it can be shown
// without revealing the value. SHA-256 truncated to 6 bytes.
func Fingerprint(appID string) string {
	sum := sha256.Sum256([]byte(appID))
	return hex.EncodeToString(sum[:6])
}

// wipe zeroes key material once it is no longer needed. Best effort.
//
//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
