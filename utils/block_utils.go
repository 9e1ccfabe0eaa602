package utils

import (
	"sort"

	"github.com/Luismorlan/ledger_in_go/model"
)

// A canonically serialized field: the field name paired with its value in
// byte form. Serialization concatenates pairs sorted by field name, so the
// resulting byte sequence never depends on struct declaration order or on
// the order the pairs were listed in.
type fieldPair struct {
	name  string
	value []byte
}

func flattenFieldPairs(pairs []fieldPair) []byte {
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].name < pairs[j].name
	})
	var data []byte
	for i := 0; i < len(pairs); i++ {
		data = append(data, []byte(pairs[i].name)...)
		data = append(data, pairs[i].value...)
	}
	return data
}

// GetTransactionBytes converts a transaction to its canonical byte form.
func GetTransactionBytes(t *model.Transaction) []byte {
	return flattenFieldPairs([]fieldPair{
		{"sender", []byte(t.Sender)},
		{"recipient", []byte(t.Recipient)},
		{"amount", Float64ToBytes(t.Amount)},
	})
}

// GetBlockBytes serializes every block field except the stored hash. The
// stored hash must never feed back into the digest, otherwise no block could
// ever carry a hash of itself.
func GetBlockBytes(block *model.Block) []byte {
	var txData []byte
	for i := 0; i < len(block.Txs); i++ {
		tx := &block.Txs[i]
		txData = append(txData, GetTransactionBytes(tx)...)
	}
	// PrevHash is serialized as raw string bytes rather than decoded hex:
	// the genesis sentinel is not a valid hex digest but must still hash.
	return flattenFieldPairs([]fieldPair{
		{"index", Int64ToBytes(block.Index)},
		{"timestamp", Int64ToBytes(block.Timestamp)},
		{"transactions", txData},
		{"proof", Int64ToBytes(block.Proof)},
		{"previous_hash", []byte(block.PrevHash)},
	})
}

// BlockHash computes the canonical hash of a block: SHA256 over the
// canonical byte sequence, rendered as a lowercase hex string. Calling it
// twice on the same field values always yields the same digest.
func BlockHash(block *model.Block) string {
	return BytesToHex(SHA256(GetBlockBytes(block)))
}
