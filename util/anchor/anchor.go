// Package anchor renders progress lines pinned to the bottom of the
// terminal while regular log lines scroll above them.
package anchor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
)

const (
	Red    = color.FgRed
	Green  = color.FgGreen
	Yellow = color.FgYellow
	Cyan   = color.FgCyan
)

type TUI struct {
	mutex sync.Mutex
	color *color.Color
	lots  []*Lot
	drawn int
}

// Lot is one pinned line, keyed by label. Closing it freezes the line
// with an optional final status; wiping it blanks the status but keeps
// the line reserved for later updates.
type Lot struct {
	tui    *TUI
	label  string
	status string
	closed bool
}

func New(attributes ...color.Attribute) *TUI {
	return &TUI{color: color.New(attributes...)}
}

// Printf writes a scrolling line above the pinned block.
func (tui *TUI) Printf(format string, a ...interface{}) {
	tui.mutex.Lock()
	defer tui.mutex.Unlock()

	tui.clear()
	fmt.Println(strings.TrimRight(fmt.Sprintf(format, a...), "\n"))
	tui.paint()
}

// AnchorPrintf is Printf in the TUI's accent color, used for lines
// that must stand out (usually failures).
func (tui *TUI) AnchorPrintf(format string, a ...interface{}) {
	tui.mutex.Lock()
	defer tui.mutex.Unlock()

	tui.clear()
	tui.color.Println(strings.TrimRight(fmt.Sprintf(format, a...), "\n"))
	tui.paint()
}

// Reads tears the pinned block down, prompts and returns one line of
// user input.
func (tui *TUI) Reads(prompt string) string {
	tui.mutex.Lock()
	defer tui.mutex.Unlock()

	tui.clear()
	fmt.Print(prompt + " ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		line = ""
	}
	tui.paint()
	return strings.TrimSpace(line)
}

// Lot returns the pinned line for label, creating it on first use.
func (tui *TUI) Lot(label string) *Lot {
	tui.mutex.Lock()
	defer tui.mutex.Unlock()

	for _, lot := range tui.lots {
		if lot.label == label {
			return lot
		}
	}

	lot := &Lot{tui: tui, label: label}
	tui.clear()
	tui.lots = append(tui.lots, lot)
	tui.paint()
	return lot
}

func (lot *Lot) Printf(format string, a ...interface{}) *Lot {
	lot.update(fmt.Sprintf(format, a...), false)
	return lot
}

func (lot *Lot) Print(status string) *Lot {
	lot.update(status, false)
	return lot
}

// Wipe blanks the status without closing the lot.
func (lot *Lot) Wipe() {
	lot.update("", false)
}

// Close freezes the lot, optionally with a final status.
func (lot *Lot) Close(status ...string) {
	final := "done"
	if len(status) > 0 {
		final = status[0]
	}
	lot.update(final, true)
}

func (lot *Lot) update(status string, closed bool) {
	lot.tui.mutex.Lock()
	defer lot.tui.mutex.Unlock()

	if lot.closed {
		return
	}

	lot.tui.clear()
	lot.status = status
	lot.closed = closed
	lot.tui.paint()
}

// clear removes the pinned block. Callers hold the mutex.
func (tui *TUI) clear() {
	if tui.drawn == 0 {
		return
	}
	cursor.ClearLinesUp(tui.drawn)
	cursor.StartOfLine()
	tui.drawn = 0
}

// paint redraws the pinned block. Callers hold the mutex.
func (tui *TUI) paint() {
	for _, lot := range tui.lots {
		if lot.status == "" {
			fmt.Printf("%s\n", tui.color.Sprint(lot.label))
		} else {
			fmt.Printf("%s: %s\n", tui.color.Sprint(lot.label), lot.status)
		}
		tui.drawn++
	}
}
