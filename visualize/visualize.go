package visualize

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os/exec"

	"github.com/Luismorlan/ledger_in_go/model"
	memviz "github.com/bradleyjkemp/memviz"
)

// We re-define the rendering model here because the full hex digests are
// too long to fit a node label and the stored model carries more than we
// want to draw.
type transaction struct {
	sender    string
	recipient string
	amount    float64
}

type block struct {
	index    int64
	hash     string
	prevHash string
	proof    int64
	txs      []transaction
}

// The hash strings are just too long to render, instead we take only first 3
// and last 3 characters and replace the middle part with '...'. E.g.
// "abcdefghi" will be rendered as "abc...ghi".
func shortenString(s string) string {
	if len(s) < 9 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:3], s[len(s)-3:])
}

func blockToBlock(b *model.Block) block {
	n := block{
		index:    b.Index,
		hash:     shortenString(b.Hash),
		prevHash: shortenString(b.PrevHash),
		proof:    b.Proof,
	}
	for i := 0; i < len(b.Txs); i++ {
		tx := b.Txs[i]
		n.txs = append(n.txs, transaction{
			sender:    tx.Sender,
			recipient: tx.Recipient,
			amount:    tx.Amount,
		})
	}
	return n
}

// Take the trailing d blocks of the chain, oldest first.
func constructData(chain []model.Block, d int) []block {
	start := len(chain) - d
	if start < 0 {
		start = 0
	}
	var data []block
	for i := start; i < len(chain); i++ {
		data = append(data, blockToBlock(&chain[i]))
	}
	return data
}

// Entry to this package, where:
// chain: a snapshot of the chain as returned by the ledger.
// d: how many trailing blocks to render.
// id: unique id of the ledger instance.
func Render(chain []model.Block, d int, id string) {
	buf := &bytes.Buffer{}

	data := constructData(chain, d)

	memviz.Map(buf, &data)

	// Write the parsed data to disk
	fileName := "/tmp/chaindata-" + id
	outputName := "/tmp/rendered-chain-" + id + ".png"
	err := ioutil.WriteFile(fileName, buf.Bytes(), 0644)
	if err != nil {
		panic(err)
	}

	cmd := exec.Command("dot", "-Tpng", fileName, "-o", outputName)
	cmd.Run()

	opCmd := exec.Command("open", outputName)
	opCmd.Run()
}
