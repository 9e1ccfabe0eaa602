package utils

import "crypto/sha256"

// Hash message using SHA256.
func SHA256(msg []byte) []byte {
	digest := sha256.Sum256(msg)
	return digest[:]
}
