// Package id generates compact random identifiers for dispatched messages.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// URL-safe base64 alphabet. 64 symbols, so masking a random byte with 0x3F
// selects a character without modulo bias.
const urlSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// Length of a delivery identifier in characters.
const Length = 22

// New generates a 22-character URL-safe random identifier.
// Identifiers are opaque receipts handed back to callers after a successful
// send; they are not persisted and uniqueness is probabilistic (132 bits of
// entropy), not enforced.
func New() string {
	randomBytes := make([]byte, Length)
	if _, err := rand.Read(randomBytes); err != nil {
		// Fallback: use time-based entropy (degraded but functional)
		binary.BigEndian.PutUint64(randomBytes[:8], uint64(time.Now().UnixNano()))
	}

	out := make([]byte, Length)
	for i, b := range randomBytes {
		out[i] = urlSafeAlphabet[b&0x3F]
	}
	return string(out)
}
