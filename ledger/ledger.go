package ledger

import (
	"errors"
	"sync"
	"time"

	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
	"github.com/jinzhu/copier"
	uuid "github.com/satori/go.uuid"
)

var (
	// ErrEmptyChain means a predecessor hash was required but the chain has
	// no blocks. Unreachable after New, and loud if it ever happens.
	ErrEmptyChain = errors.New("chain is empty, cannot read the previous block")
	// Input errors returned by AddTransaction. The command layer validates
	// the same conditions at the boundary; the core rejects them again so a
	// malformed transaction can never reach the pending pool.
	ErrEmptySender    = errors.New("sender must not be empty")
	ErrEmptyRecipient = errors.New("recipient must not be empty")
	ErrNegativeAmount = errors.New("amount must be a non-negative number")
)

// A Ledger maintains the append-only block chain and the pool of pending
// transactions waiting to be sealed into the next block. Every session owns
// its own Ledger instance.
type Ledger struct {
	// The block chain. Never empty after New, never reordered or truncated.
	chain []model.Block
	// Pending transactions in arrival order. Cleared on every seal.
	pending []model.Transaction
	// Ledger config.
	config config.AppConfig
	// A single mutex for changing internal state.
	m sync.RWMutex
	// A unique identifier of this ledger. It doesn't impact hashing, only
	// used to key rendered artifacts on disk.
	uuid string
}

// New creates a brand new ledger, which contains a genesis block in the
// chain, so the chain is never empty.
func New(c config.AppConfig) *Ledger {
	myuuid := uuid.NewV4()
	l := &Ledger{
		config: c,
		m:      sync.RWMutex{},
		uuid:   myuuid.String(),
	}
	genesis := model.Block{
		Index:     1,
		Timestamp: time.Now().Unix(),
		Proof:     c.GENESIS_PROOF,
		PrevHash:  c.GENESIS_PREV_HASH,
	}
	genesis.Hash = utils.BlockHash(&genesis)
	l.chain = append(l.chain, genesis)
	return l
}

// AddTransaction appends a transaction to the pending pool and returns the
// index of the block it would land in if sealed next. The returned index is
// only a hint: more transactions or another seal can still change it.
func (l *Ledger) AddTransaction(sender string, recipient string, amount float64) (int64, error) {
	if sender == "" {
		return 0, ErrEmptySender
	}
	if recipient == "" {
		return 0, ErrEmptyRecipient
	}
	// Negated comparison so NaN is rejected too: every NaN comparison is
	// false, so a plain `amount < 0` would wave it through.
	if !(amount >= 0) {
		return 0, ErrNegativeAmount
	}

	l.m.Lock()
	defer l.m.Unlock()
	if len(l.chain) == 0 {
		return 0, ErrEmptyChain
	}
	l.pending = append(l.pending, model.Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	})
	return l.chain[len(l.chain)-1].Index + 1, nil
}

// SealBlock snapshots the pending pool into a new block, links it to the
// current last block and appends it to the chain. The pool is cleared in the
// same critical section, so every transaction ends up in exactly one block
// and none is lost between seals. The proof is recorded as-is, no difficulty
// condition is checked.
func (l *Ledger) SealBlock(proof int64) (model.Block, error) {
	l.m.Lock()
	defer l.m.Unlock()

	if len(l.chain) == 0 {
		return model.Block{}, ErrEmptyChain
	}

	// Deep copy the pending transactions so the caller mutating its own
	// transaction values later cannot reach into the sealed block.
	var txs []model.Transaction
	copier.Copy(&txs, &l.pending)

	block := model.Block{
		Index:     int64(len(l.chain)) + 1,
		Timestamp: time.Now().Unix(),
		Txs:       txs,
		Proof:     proof,
		PrevHash:  l.chain[len(l.chain)-1].Hash,
	}
	block.Hash = utils.BlockHash(&block)

	l.chain = append(l.chain, block)
	l.pending = nil

	// Hand back a detached copy. The stored block shares no memory with the
	// caller, so mutating the returned value cannot break the chain.
	var sealed model.Block
	copier.Copy(&sealed, &block)
	return sealed, nil
}

// Validate scans the chain from the second block to the last. Every block
// must link to the stored hash of its predecessor, and its own stored hash
// must match the recomputed canonical hash. Returns false on the first
// violation.
func (l *Ledger) Validate() bool {
	l.m.RLock()
	defer l.m.RUnlock()

	for i := 1; i < len(l.chain); i++ {
		prev := &l.chain[i-1]
		curr := &l.chain[i]
		if curr.PrevHash != prev.Hash {
			return false
		}
		if curr.Hash != utils.BlockHash(curr) {
			return false
		}
	}
	return true
}

// SimulateTamper reports whether index points at an existing block, using
// the same 1-based indexing the blocks themselves carry. It exists to drive
// an illustrative message in the UI and never mutates anything: the
// tampering is only ever described, not performed.
func (l *Ledger) SimulateTamper(index int64) bool {
	l.m.RLock()
	defer l.m.RUnlock()
	return index > 0 && index <= int64(len(l.chain))
}

// Chain returns a deep copy of the current chain: a consistent snapshot that
// callers can walk or mutate without touching the stored blocks.
func (l *Ledger) Chain() []model.Block {
	l.m.RLock()
	defer l.m.RUnlock()
	var chain []model.Block
	copier.Copy(&chain, &l.chain)
	return chain
}

// Length returns how many blocks the chain currently holds.
func (l *Ledger) Length() int64 {
	l.m.RLock()
	defer l.m.RUnlock()
	return int64(len(l.chain))
}

// LastBlock returns a copy of the most recently sealed block.
func (l *Ledger) LastBlock() (model.Block, error) {
	l.m.RLock()
	defer l.m.RUnlock()
	if len(l.chain) == 0 {
		return model.Block{}, ErrEmptyChain
	}
	var last model.Block
	copier.Copy(&last, &l.chain[len(l.chain)-1])
	return last, nil
}

// Pending returns a copy of the transactions waiting for the next seal.
func (l *Ledger) Pending() []model.Transaction {
	l.m.RLock()
	defer l.m.RUnlock()
	var txs []model.Transaction
	copier.Copy(&txs, &l.pending)
	return txs
}

// PendingCount returns how many transactions wait for the next seal.
func (l *Ledger) PendingCount() int {
	l.m.RLock()
	defer l.m.RUnlock()
	return len(l.pending)
}

// ID returns the unique identifier of this ledger instance.
func (l *Ledger) ID() string {
	return l.uuid
}
