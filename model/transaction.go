package model

// A single transfer recorded on the ledger. Transactions are plain value
// records: they live in the pending pool until sealed, and the sealing block
// keeps its own copy, never a reference back to the caller's object.
type Transaction struct {
	// Display name of the sender. Must not be empty.
	Sender string
	// Display name of the recipient. Must not be empty.
	Recipient string
	// How much value to transfer. Non-negative.
	Amount float64
}
