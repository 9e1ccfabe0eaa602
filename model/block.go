package model

// GenesisPrevHash is the fixed sentinel stored as the previous hash of the
// first block, which has no real predecessor.
const GenesisPrevHash = "1"

type Block struct {
	// Position of this block in the chain. 1-based and sequential.
	Index int64
	// Seconds since epoch at seal time.
	Timestamp int64
	// Transactions sealed into this block, in arrival order. May be empty.
	Txs []Transaction
	// Placeholder proof value, stored as-is. This demo does not implement
	// real proof of work.
	Proof int64
	// Hash of the previous block in the hex format, or GenesisPrevHash for
	// the first block.
	PrevHash string
	// Hash of this entire block in the hex string format, computed over all
	// other fields at seal time and never recomputed afterwards.
	Hash string
}
