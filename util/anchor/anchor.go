package anchor

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
)

type Color int

const (
	Red Color = iota
	Green
	Yellow
	Blue
	Magenta
	Cyan
)

var attributes = map[Color]color.Attribute{
	Red:     color.FgRed,
	Green:   color.FgGreen,
	Yellow:  color.FgYellow,
	Blue:    color.FgBlue,
	Magenta: color.FgMagenta,
	Cyan:    color.FgCyan,
}

// Window prints regular lines on top of a set of anchored lots,
// i.e. status lines which get redrawn in place at the bottom
// of the terminal until they get closed
type Window struct {
	lock        sync.Mutex
	output      io.Writer
	color       *color.Color
	interactive bool
	lots        []*Lot
	drawn       int
}

type Lot struct {
	window  *Window
	name    string
	message string
}

type Option func(*Window)

// WithOutput redirects the window to the given writer,
// which disables in-place redrawing
func WithOutput(output io.Writer) Option {
	return func(window *Window) {
		window.output = output
		window.interactive = false
	}
}

func New(anchorColor Color, options ...Option) *Window {
	window := &Window{
		output:      os.Stdout,
		color:       color.New(attributes[anchorColor]),
		interactive: !color.NoColor,
	}
	for _, option := range options {
		option(window)
	}
	return window
}

func (window *Window) Printf(format string, a ...any) {
	window.print(fmt.Sprintf(format, a...))
}

// AnchorPrintf prints a line highlighted with the window color
func (window *Window) AnchorPrintf(format string, a ...any) {
	window.print(window.color.Sprintf(format, a...))
}

// Lot returns the anchored line with the given name,
// creating it if not there yet
func (window *Window) Lot(name string) *Lot {
	window.lock.Lock()
	defer window.lock.Unlock()
	for _, lot := range window.lots {
		if lot.name == name {
			return lot
		}
	}
	lot := &Lot{window: window, name: name}
	window.lots = append(window.lots, lot)
	return lot
}

func (window *Window) print(line string) {
	window.lock.Lock()
	defer window.lock.Unlock()
	window.wipe()
	fmt.Fprintln(window.output, line)
	window.draw()
}

// wipe and draw must be called with the lock held
func (window *Window) wipe() {
	if !window.interactive {
		return
	}
	for ; window.drawn > 0; window.drawn-- {
		cursor.UpAndClear(1)
	}
}

func (window *Window) draw() {
	if !window.interactive {
		return
	}
	for _, lot := range window.lots {
		if len(lot.message) == 0 {
			continue
		}
		fmt.Fprintf(window.output, "%s %s\n", window.color.Sprint(lot.name), lot.message)
		window.drawn++
	}
}

func (lot *Lot) Printf(format string, a ...any) {
	lot.Print(fmt.Sprintf(format, a...))
}

func (lot *Lot) Print(message string) {
	lot.window.lock.Lock()
	defer lot.window.lock.Unlock()
	lot.window.wipe()
	lot.message = message
	if !lot.window.interactive && len(message) > 0 {
		fmt.Fprintf(lot.window.output, "%s %s\n", lot.name, message)
	}
	lot.window.draw()
}

// Wipe blanks the lot without releasing it
func (lot *Lot) Wipe() {
	lot.Print("")
}

// Close releases the lot, leaving a final line behind
func (lot *Lot) Close(message ...string) {
	final := "done"
	if len(message) > 0 {
		final = strings.Join(message, " ")
	}

	window := lot.window
	window.lock.Lock()
	defer window.lock.Unlock()
	window.wipe()
	for index, other := range window.lots {
		if other == lot {
			window.lots = append(window.lots[:index], window.lots[index+1:]...)
			break
		}
	}
	fmt.Fprintf(window.output, "%s %s\n", window.color.Sprint(lot.name), final)
	window.draw()
}
