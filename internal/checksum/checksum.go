// Package checksum fingerprints puzzle inputs so that stored answers can be
// matched to the exact input they were computed from.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the lowercase hex SHA-256 of data.
func Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Short returns the first 12 hex digits of Sum, for display.
func Short(sum string) string {
	if len(sum) <= 12 {
		return sum
	}
	return sum[:12]
}
