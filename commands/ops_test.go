package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCommandTx(t *testing.T) {
	c, err := CreateCommand("tx alice bob 10")
	assert.Nil(t, err)
	assert.Equal(t, Operation(TX), c.Op)
	assert.Equal(t, []string{"alice", "bob", "10"}, c.Args)
}

func TestCreateCommandAdd(t *testing.T) {
	c, err := CreateCommand("add alice bob 0.5")
	assert.Nil(t, err)
	assert.Equal(t, Operation(ADD), c.Op)
}

func TestCreateCommandSeal(t *testing.T) {
	c, err := CreateCommand("seal")
	assert.Nil(t, err)
	assert.Equal(t, Operation(SEAL), c.Op)
	assert.Equal(t, 0, len(c.Args))

	c, err = CreateCommand("seal 42")
	assert.Nil(t, err)
	assert.Equal(t, Operation(SEAL), c.Op)
	assert.Equal(t, []string{"42"}, c.Args)
}

func TestCreateCommandNoArgs(t *testing.T) {
	c, err := CreateCommand("validate")
	assert.Nil(t, err)
	assert.Equal(t, Operation(VALIDATE), c.Op)

	c, err = CreateCommand("pending")
	assert.Nil(t, err)
	assert.Equal(t, Operation(PENDING), c.Op)
}

func TestCreateCommandIndexed(t *testing.T) {
	c, err := CreateCommand("tamper 2")
	assert.Nil(t, err)
	assert.Equal(t, Operation(TAMPER), c.Op)

	c, err = CreateCommand("show 5")
	assert.Nil(t, err)
	assert.Equal(t, Operation(SHOW), c.Op)

	// Depth is optional, the handler falls back to the configured one.
	c, err = CreateCommand("show")
	assert.Nil(t, err)
	assert.Equal(t, Operation(SHOW), c.Op)
	assert.Equal(t, 0, len(c.Args))
}

func TestCreateCommandRejectsInvalid(t *testing.T) {
	invalid := []string{
		"",
		"bogus",
		"tx alice bob",           // missing amount
		"tx alice bob ten",       // amount not a number
		"tx alice bob -3",        // negative amount
		"tx alice  10",           // empty recipient from double space
		"seal 1 2",               // too many args
		"seal abc",               // proof not a number
		"tamper",                 // missing index
		"tamper two",             // index not a number
		"show five",              // depth not a number
		"validate now",           // unexpected arg
	}
	for _, s := range invalid {
		_, err := CreateCommand(s)
		assert.NotNil(t, err, "expected %q to be rejected", s)
	}
}

func TestDefaultCommand(t *testing.T) {
	c := NewDefaultCommand()
	assert.True(t, c.IsDefault())
	assert.False(t, c.IsValid())
}
