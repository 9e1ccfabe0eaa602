package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/layout"
	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/Luismorlan/ledger_in_go/visualize"
	"github.com/jroimartin/gocui"
	"gopkg.in/yaml.v2"
)

var (
	configPath *string
	debugMode  *bool
)

func init() {
	configPath = flag.String("config_path", "ledger/cmd/config.yaml", "path to ledger demo config")
	debugMode = flag.Bool("debug_mode", false, "Using debug mode will disable fancy GUI.")
}

func ParseAppConfig(path string) config.AppConfig {
	c := config.DefaultAppConfig()
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatal("yamlFile. get err: ", err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		log.Fatal("Unmarshal: ", err)
	}
	return c
}

// Parse command from stdio. Only used in debug mode.
func ParseCommand(cmd chan commands.Command) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		text, _ := reader.ReadString('\n')
		// convert CRLF to LF
		text = strings.Replace(text, "\n", "", -1)
		c, err := commands.CreateCommand(text)
		if err != nil {
			log.Println(err)
			continue
		}
		cmd <- c
	}
}

// Return a gui handle if not in debug mode.
func ListenOnInput(cmd chan commands.Command, ldg *ledger.Ledger, debugMode bool) *gocui.Gui {
	// Choose a fancy GUI
	if debugMode {
		go ParseCommand(cmd)
		return nil
	}
	g, err := layout.CreateGui(cmd, ldg, "ledger/cmd/usage.txt")
	if err != nil {
		log.Fatalln(err)
	}
	go func() {
		if err := g.MainLoop(); err != nil {
			if err == gocui.ErrQuit {
				g.Close()
				os.Exit(0)
			}
			os.Exit(1)
		}
	}()
	return g
}

// Write a line to the logger view, or to stdout in debug mode. Going through
// g.Update also forces a relayout so the status and explorer views refresh
// after every handled command.
func logf(g *gocui.Gui, format string, args ...interface{}) {
	if g == nil {
		log.Printf(format+"\n", args...)
		return
	}
	g.Update(func(g *gocui.Gui) error {
		v, err := g.View("logger")
		if err != nil {
			return err
		}
		fmt.Fprintf(v, format+"\n", args...)
		return nil
	})
}

// Execute commands against the ledger, one at a time.
func HandleCommand(cmd chan commands.Command, ldg *ledger.Ledger, g *gocui.Gui, cfg config.AppConfig) {
	for {
		c := <-cmd
		switch c.Op {
		case commands.TX:
			// The reference behavior: one block per submission. Append the
			// transaction and seal it right away with the default proof.
			amount, _ := strconv.ParseFloat(c.Args[2], 64)
			if _, err := ldg.AddTransaction(c.Args[0], c.Args[1], amount); err != nil {
				logf(g, "failed to add transaction: %v", err)
				continue
			}
			block, err := ldg.SealBlock(cfg.DEFAULT_PROOF)
			if err != nil {
				logf(g, "failed to seal block: %v", err)
				continue
			}
			logf(g, "Block %d added to chain!", block.Index)
		case commands.ADD:
			amount, _ := strconv.ParseFloat(c.Args[2], 64)
			hint, err := ldg.AddTransaction(c.Args[0], c.Args[1], amount)
			if err != nil {
				logf(g, "failed to add transaction: %v", err)
				continue
			}
			logf(g, "transaction buffered, lands in block %d if sealed next", hint)
		case commands.SEAL:
			proof := cfg.DEFAULT_PROOF
			if len(c.Args) == 1 {
				proof, _ = strconv.ParseInt(c.Args[0], 10, 64)
			}
			block, err := ldg.SealBlock(proof)
			if err != nil {
				logf(g, "failed to seal block: %v", err)
				continue
			}
			logf(g, "Block %d added to chain with %d transaction(s)!", block.Index, len(block.Txs))
		case commands.VALIDATE:
			if ldg.Validate() {
				logf(g, "chain is valid")
			} else {
				logf(g, "chain is NOT valid, linkage or hash integrity is broken")
			}
		case commands.TAMPER:
			index, _ := strconv.ParseInt(c.Args[0], 10, 64)
			if ldg.SimulateTamper(index) {
				logf(g, "Attempted to tamper block %d! Sealed transactions cannot"+
					" actually be changed, the ledger remains immutable. If someone"+
					" did change one, the hash chain would break.", index)
			} else {
				logf(g, "no block at index %d to tamper with", index)
			}
		case commands.SHOW:
			d := cfg.SHOW_DEPTH
			if len(c.Args) == 1 {
				d, _ = strconv.Atoi(c.Args[0])
			}
			visualize.Render(ldg.Chain(), d, ldg.ID())
			logf(g, "rendered last %d block(s) to /tmp/rendered-chain-%s.png", d, ldg.ID())
		case commands.PENDING:
			txs := ldg.Pending()
			if len(txs) == 0 {
				logf(g, "no pending transactions")
				continue
			}
			for _, tx := range txs {
				logf(g, "pending: %s -> %s : %.2f", tx.Sender, tx.Recipient, tx.Amount)
			}
		default:
			logf(g, "Unrecognized command: %v", c)
		}
	}
}

func main() {
	flag.Parse()

	cfg := ParseAppConfig(*configPath)

	// A command channel that takes parsed commands from the GUI input box
	// (or stdin in debug mode) and hands them to the handler loop.
	cmd := make(chan commands.Command)

	// One ledger per session. State lives only for the lifetime of the
	// process, by design.
	ldg := ledger.New(cfg)

	g := ListenOnInput(cmd, ldg, *debugMode)
	go HandleCommand(cmd, ldg, g, cfg)

	c := make(chan int)
	<-c
}
