package layout

import (
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"sync"

	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/jroimartin/gocui"
)

type cmd struct {
	str   string
	ready bool
	m     sync.RWMutex
}

var command cmd = cmd{}

// PastCmd is the ViewManager that logs past command.
type PastCmd struct {
	name string
}

// Input box for command.
type Input struct {
	name string
	cmd  chan commands.Command
}

type Logger struct {
	name string
}

type Manual struct {
	name string
	path string
}

// Status renders the live chain metrics: length, validity and how many
// transactions wait for the next seal.
type Status struct {
	name string
	ldg  *ledger.Ledger
}

// Explorer renders the chain in reverse chronological order, newest block
// on top, with linkage hashes and the sealed transactions.
type Explorer struct {
	name string
	ldg  *ledger.Ledger
}

func (pc *PastCmd) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom left corner.
	v, _ := g.SetView(pc.name, 1, maxY*2/3, maxX/3, maxY-4)
	v.Autoscroll = true
	v.Wrap = true

	command.m.RLock()
	defer command.m.RUnlock()
	if command.ready {
		fmt.Fprintln(v, "> "+command.str)
	}
	command.ready = false

	return nil
}

func (i *Input) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom left.
	v, err := g.SetView(i.name, 1, maxY-3, maxX/3, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Editor = i
	v.Editable = true
	return nil
}

func (l *Logger) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom right corner.
	v, _ := g.SetView(l.name, maxX/3+1, maxY*2/3, maxX-1, maxY-1)
	v.Autoscroll = true
	v.Wrap = true
	return nil
}

func (m *Manual) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Top left corner.
	v, _ := g.SetView(m.name, 1, 1, maxX/3, maxY*2/3-1)
	v.Autoscroll = true
	v.Wrap = true
	v.Clear()
	dat, err := ioutil.ReadFile(m.path)
	if err != nil {
		g.Close()
		log.Fatal(err)
	}
	fmt.Fprintln(v, string(dat))
	return nil
}

func (s *Status) Layout(g *gocui.Gui) error {
	maxX, _ := g.Size()
	// Top right strip.
	v, err := g.SetView(s.name, maxX/3+1, 1, maxX-1, 3)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Clear()
	valid := "YES"
	if !s.ldg.Validate() {
		valid = "NO"
	}
	fmt.Fprintf(v, "chain length: %d | chain valid: %s | pending txs: %d",
		s.ldg.Length(), valid, s.ldg.PendingCount())
	return nil
}

func (e *Explorer) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Right side, between the status strip and the logger.
	v, err := g.SetView(e.name, maxX/3+1, 4, maxX-1, maxY*2/3-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Wrap = true
	v.Clear()
	chain := e.ldg.Chain()
	// Newest block first, like any block explorer.
	for i := len(chain) - 1; i >= 0; i-- {
		b := chain[i]
		fmt.Fprintf(v, "Block %d (proof=%d)\n", b.Index, b.Proof)
		fmt.Fprintf(v, "  prev hash: %s\n", b.PrevHash)
		fmt.Fprintf(v, "  hash:      %s\n", b.Hash)
		if len(b.Txs) == 0 {
			fmt.Fprintln(v, "  no transactions")
		}
		for _, tx := range b.Txs {
			fmt.Fprintf(v, "  tx: %s -> %s : %.2f\n", tx.Sender, tx.Recipient, tx.Amount)
		}
	}
	return nil
}

func (i *Input) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	switch {
	case key == gocui.KeyEnter:
		// Read buffer.
		s := v.Buffer()
		// Remove \n from string.
		s = strings.Replace(s, "\n", "", -1)
		op, err := commands.CreateCommand(s)
		command.m.Lock()
		command.str = s
		if err != nil {
			command.str = s + "\n" + err.Error()
		}
		command.ready = true
		command.m.Unlock()
		if err == nil {
			// If a valid command, send to the handler for processing.
			i.cmd <- op
		}

		// Reset cursor.
		v.Clear()
		v.SetOrigin(0, 0)
		v.SetCursor(0, 0)

	case ch != 0 && mod == 0:
		v.EditWrite(ch)
	case key == gocui.KeySpace:
		v.EditWrite(' ')
	case key == gocui.KeyBackspace || key == gocui.KeyBackspace2:
		v.EditDelete(true)
	}
}

func SetFocus(name string) func(g *gocui.Gui) error {
	return func(g *gocui.Gui) error {
		_, err := g.SetCurrentView(name)
		return err
	}
}

// Create a GUI, using the command channel to pass commands to the handler
// loop and the ledger to render live chain state.
func CreateGui(cmd chan commands.Command, ldg *ledger.Ledger, manualPath string) (*gocui.Gui, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}

	g.Cursor = true

	input := &Input{name: "input", cmd: cmd}
	pc := &PastCmd{name: "pastcommand"}
	l := &Logger{name: "logger"}
	m := &Manual{name: "manual", path: manualPath}
	s := &Status{name: "status", ldg: ldg}
	e := &Explorer{name: "explorer", ldg: ldg}
	focus := gocui.ManagerFunc(SetFocus("input"))
	g.SetManager(pc, input, l, m, s, e, focus)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	return g, err
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
