package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Tracker prints one line per finished item and a closing summary. It is safe
// for concurrent use by bulk workers.
type Tracker struct {
	mu      sync.Mutex
	out     io.Writer
	width   int
	verb    string
	started time.Time
	now     func() time.Time
	done    int
	failed  int
}

// NewTracker returns a Tracker writing to out. Items are reported as
// "<verb> <name>".
func NewTracker(out io.Writer, verb string, width int) *Tracker {
	return &Tracker{
		out:     out,
		width:   width,
		verb:    verb,
		started: time.Now(),
		now:     time.Now,
	}
}

// Done reports a finished item.
func (t *Tracker) Done(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	_, _ = fmt.Fprintln(t.out, Label("", name, t.verb, t.width))
}

// Failed reports an item that could not be processed.
func (t *Tracker) Failed(name string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failed++
	_, _ = fmt.Fprintf(t.out, "%s: %v\n", Label("", name, "Failed", t.width), err)
}

// Counts returns the finished and failed item counts.
func (t *Tracker) Counts() (done, failed int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done, t.failed
}

// Summary prints the totals and the elapsed time.
func (t *Tracker) Summary() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(
		t.out,
		"%s %d item(s), %d failed, elapsed: %s\n",
		t.verb, t.done, t.failed, FormatElapsed(t.now().Sub(t.started)),
	)
}
