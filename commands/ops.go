package commands

import (
	"errors"
	"strconv"
	"strings"
)

type Operation int

const (
	DEFAULT = iota
	// Append a transaction and seal it into its own block right away.
	TX
	// Append a transaction to the pending pool without sealing.
	ADD
	// Seal all pending transactions into a new block.
	SEAL
	// Validate linkage and hashes over the whole chain.
	VALIDATE
	// Simulate tampering with a block by index. Illustration only.
	TAMPER
	// Render the last blocks of the chain to an image.
	SHOW
	// List pending transactions.
	PENDING
)

// A command contains a operation and many arguments.
type Command struct {
	Op   Operation
	Args []string
}

func (c Command) IsValid() bool {
	switch c.Op {
	case VALIDATE, PENDING:
		return len(c.Args) == 0
	case TX, ADD:
		if len(c.Args) != 3 {
			return false
		}
		// Sender and recipient must be non-empty, amount a non-negative number.
		if c.Args[0] == "" || c.Args[1] == "" {
			return false
		}
		amount, err := strconv.ParseFloat(c.Args[2], 64)
		return err == nil && amount >= 0
	case SEAL:
		if len(c.Args) == 0 {
			return true
		}
		if len(c.Args) != 1 {
			return false
		}
		_, err := strconv.ParseInt(c.Args[0], 10, 64)
		return err == nil
	case SHOW:
		if len(c.Args) == 0 {
			return true
		}
		if len(c.Args) != 1 {
			return false
		}
		_, err := strconv.Atoi(c.Args[0])
		return err == nil
	case TAMPER:
		if len(c.Args) != 1 {
			return false
		}
		// index must be a number.
		_, err := strconv.Atoi(c.Args[0])
		return err == nil
	default:
		return false
	}
}

// From string, create a command.
func CreateCommand(s string) (Command, error) {
	// split command by space.
	ss := strings.Split(s, " ")
	if len(ss) == 0 {
		return Command{}, errors.New("command is empty")
	}
	cmd := Command{}
	switch ss[0] {
	case "tx":
		cmd.Op = TX
	case "add":
		cmd.Op = ADD
	case "seal":
		cmd.Op = SEAL
	case "validate":
		cmd.Op = VALIDATE
	case "tamper":
		cmd.Op = TAMPER
	case "show":
		cmd.Op = SHOW
	case "pending":
		cmd.Op = PENDING
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return Command{}, errors.New("invalid command")
	}
	return cmd, nil
}

// Create a brand new command with default operation.
func NewDefaultCommand() Command {
	return Command{
		Op: DEFAULT,
	}
}

func (c Command) IsDefault() bool {
	return c.Op == DEFAULT
}
