// Package token derives the admission token for a (queue, user) pair.
//
// The token is a plain SHA-256 digest with no secret. Anyone who knows the queue name and
// user id can recompute it, so it correlates a client with its queue slot but does not
// authorize anything on its own.
package token

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const prefix = "user-queue-"

// Generate returns hex(sha256("user-queue-<queue>-<userID>")).
func Generate(queue, userID string) string {
	sum := sha256.Sum256([]byte(prefix + queue + "-" + userID))
	return hex.EncodeToString(sum[:])
}

// Validate recomputes the token and compares it with tok.
func Validate(queue, userID, tok string) bool {
	if tok == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Generate(queue, userID)), []byte(tok)) == 1
}

// CookieName is the cookie transports use to hand the token back to browsers.
func CookieName(queue string) string {
	return prefix + queue + "-token"
}
