package config

import "github.com/Luismorlan/ledger_in_go/model"

// This is the global app config for the ledger demo.
type AppConfig struct {
	// Proof value recorded in the genesis block.
	GENESIS_PROOF int64
	// Sentinel stored as the previous hash of the genesis block.
	GENESIS_PREV_HASH string
	// Proof used when a command seals without an explicit proof value.
	DEFAULT_PROOF int64
	// How many trailing blocks the show command renders when no depth is given.
	SHOW_DEPTH int
}

// DefaultAppConfig returns the config values used when no yaml file
// overrides them.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		GENESIS_PROOF:     100,
		GENESIS_PREV_HASH: model.GenesisPrevHash,
		DEFAULT_PROOF:     123,
		SHOW_DEPTH:        5,
	}
}
