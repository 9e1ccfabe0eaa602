package utils

import (
	"encoding/binary"
	"encoding/hex"
	"math"
)

func BytesToHex(bytes []byte) string {
	return hex.EncodeToString(bytes)
}

func Int64ToBytes(i int64) []byte {
	b := make([]byte, 8)
	// Fixed-width big endian. A varint encoding would overrun an 8 byte
	// buffer for values at or above 2^55, and the proof is caller-supplied
	// and unbounded.
	binary.BigEndian.PutUint64(b, uint64(i))
	return b
}

func Float64ToBytes(f float64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
	return b
}
