package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent fingerprints a page body for the route manifest. Twelve hex
// characters are plenty to tell two renders of the same page apart.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])[:12]
}
