// Package progress draws byte-count progress for file transfers.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	bubbleprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

// Meter tracks bytes transferred against a known total.
type Meter interface {
	Add(n int)
	Close()
}

// Nop is a Meter that records nothing.
var Nop Meter = nopMeter{}

type nopMeter struct{}

func (nopMeter) Add(int) {}
func (nopMeter) Close()  {}

// Bar renders a single-line bar. On a terminal it redraws in place every
// whole percent; otherwise it prints one summary line on Close.
type Bar struct {
	mu          sync.Mutex
	w           io.Writer
	label       string
	total       int64
	done        int64
	lastPercent int
	interactive bool
	closed      bool
	bar         bubbleprogress.Model
}

// New returns a Bar labeled label writing to w.
func New(w io.Writer, label string, total int64) *Bar {
	interactive := false
	if f, ok := w.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return newBar(w, label, total, interactive)
}

func newBar(w io.Writer, label string, total int64, interactive bool) *Bar {
	return &Bar{
		w:           w,
		label:       label,
		total:       total,
		lastPercent: -1,
		interactive: interactive,
		bar: bubbleprogress.New(
			bubbleprogress.WithDefaultGradient(),
			bubbleprogress.WithWidth(32),
			bubbleprogress.WithoutPercentage(),
		),
	}
}

func (b *Bar) Add(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || n <= 0 {
		return
	}
	b.done += int64(n)
	if !b.interactive {
		return
	}
	if pct := b.percent(); pct != b.lastPercent {
		b.lastPercent = pct
		b.draw()
	}
}

// Close draws the final state. It is safe to call more than once.
func (b *Bar) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	if b.interactive {
		b.draw()
		fmt.Fprintln(b.w)
		return
	}
	fmt.Fprintf(b.w, "%s: %s/%s\n", b.label, humanize.IBytes(uint64(b.done)), humanize.IBytes(uint64(b.total)))
}

func (b *Bar) percent() int {
	if b.total <= 0 {
		return 100
	}
	pct := int(b.done * 100 / b.total)
	if pct > 100 {
		pct = 100
	}
	return pct
}

func (b *Bar) draw() {
	fmt.Fprintf(b.w, "\r%s %s %3d%% %s/%s",
		b.label,
		b.bar.ViewAs(float64(b.percent())/100),
		b.percent(),
		humanize.IBytes(uint64(b.done)),
		humanize.IBytes(uint64(b.total)),
	)
}
