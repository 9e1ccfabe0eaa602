package utils

import (
	"math"
	"regexp"
	"testing"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/stretchr/testify/assert"
)

func createTestBlock() model.Block {
	return model.Block{
		Index:     2,
		Timestamp: 1700000000,
		Txs: []model.Transaction{
			{Sender: "alice", Recipient: "bob", Amount: 10},
		},
		Proof:    123,
		PrevHash: "00ab",
	}
}

func TestGetBlockBytes(t *testing.T) {
	testBlock := createTestBlock()

	actualBlockBytes := GetBlockBytes(&testBlock)

	// Field names sorted lexicographically:
	// index < previous_hash < proof < timestamp < transactions.
	var expectedBlockBytes []byte
	expectedBlockBytes = append(expectedBlockBytes, []byte("index")...)
	expectedBlockBytes = append(expectedBlockBytes, Int64ToBytes(testBlock.Index)...)
	expectedBlockBytes = append(expectedBlockBytes, []byte("previous_hash")...)
	expectedBlockBytes = append(expectedBlockBytes, []byte(testBlock.PrevHash)...)
	expectedBlockBytes = append(expectedBlockBytes, []byte("proof")...)
	expectedBlockBytes = append(expectedBlockBytes, Int64ToBytes(testBlock.Proof)...)
	expectedBlockBytes = append(expectedBlockBytes, []byte("timestamp")...)
	expectedBlockBytes = append(expectedBlockBytes, Int64ToBytes(testBlock.Timestamp)...)
	expectedBlockBytes = append(expectedBlockBytes, []byte("transactions")...)
	expectedBlockBytes = append(expectedBlockBytes, GetTransactionBytes(&testBlock.Txs[0])...)

	assert.Equal(t, expectedBlockBytes, actualBlockBytes)
}

func TestFlattenFieldPairsIgnoresInsertionOrder(t *testing.T) {
	a := flattenFieldPairs([]fieldPair{
		{"sender", []byte("alice")},
		{"recipient", []byte("bob")},
		{"amount", Float64ToBytes(10)},
	})
	b := flattenFieldPairs([]fieldPair{
		{"amount", Float64ToBytes(10)},
		{"recipient", []byte("bob")},
		{"sender", []byte("alice")},
	})
	assert.Equal(t, a, b)
}

func TestBlockHashIsDeterministic(t *testing.T) {
	block := createTestBlock()
	assert.Equal(t, BlockHash(&block), BlockHash(&block))
}

func TestBlockHashIgnoresStoredHash(t *testing.T) {
	block := createTestBlock()
	expected := BlockHash(&block)

	block.Hash = "junkjunkjunk"
	assert.Equal(t, expected, BlockHash(&block))
}

func TestBlockHashIsLowercaseHexDigest(t *testing.T) {
	block := createTestBlock()
	digest := BlockHash(&block)
	assert.Regexp(t, regexp.MustCompile("^[0-9a-f]{64}$"), digest)
}

func TestBlockHashChangesWithAnyField(t *testing.T) {
	base := createTestBlock()
	baseHash := BlockHash(&base)

	tampered := createTestBlock()
	tampered.Txs[0].Amount = 11
	assert.NotEqual(t, baseHash, BlockHash(&tampered))

	tampered = createTestBlock()
	tampered.Proof = 124
	assert.NotEqual(t, baseHash, BlockHash(&tampered))

	tampered = createTestBlock()
	tampered.PrevHash = "00ac"
	assert.NotEqual(t, baseHash, BlockHash(&tampered))
}

func TestBlockHashWithLargeProof(t *testing.T) {
	// The proof is recorded as-is, so any int64 must serialize and hash
	// without overrunning the fixed-width buffer.
	for _, proof := range []int64{1 << 55, math.MaxInt64, math.MinInt64} {
		block := createTestBlock()
		block.Proof = proof
		assert.Regexp(t, regexp.MustCompile("^[0-9a-f]{64}$"), BlockHash(&block))
	}
}

func TestGetBlockBytesWithGenesisSentinel(t *testing.T) {
	genesis := model.Block{
		Index:     1,
		Timestamp: 1700000000,
		Proof:     100,
		PrevHash:  model.GenesisPrevHash,
	}
	// The sentinel "1" is not valid hex, serialization must still work.
	assert.NotEmpty(t, GetBlockBytes(&genesis))
	assert.NotEmpty(t, BlockHash(&genesis))
}
