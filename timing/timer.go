// Package timing implements the execution-timing tree (§4.6): a lightweight
// nested-timer primitive used for instrumentation only, never a correctness
// concern. Timers are request-local, per DESIGN NOTES §9, so concurrent
// requests at the service layer never share timer state.
package timing

import (
	"fmt"
	"strings"
	"time"

	"github.com/antigravity/transit-raptor/rerr"
)

// Timer is a single named node in an execution-timing tree.
type Timer struct {
	Name     string
	Parent   *Timer
	Children []*Timer

	running   bool
	startedAt time.Time

	AccumulatedDurationNanos int64
}

// New creates a root timer.
func New(name string) *Timer {
	return &Timer{Name: name}
}

// Child creates and registers a child timer under the receiver.
func (t *Timer) Child(name string) *Timer {
	c := &Timer{Name: name, Parent: t}
	t.Children = append(t.Children, c)
	return c
}

// Start begins timing. Starting an already-running timer is a programmer
// error (§7): it panics via rerr.Fatal rather than silently continuing.
func (t *Timer) Start() {
	if t.running {
		rerr.Fataf("timer %q already started", t.Name)
	}
	t.running = true
	t.startedAt = time.Now()
}

// Stop ends timing and accumulates the elapsed duration. Stopping a
// non-running timer is a programmer error (§7).
func (t *Timer) Stop() {
	if !t.running {
		rerr.Fataf("timer %q not running", t.Name)
	}
	t.AccumulatedDurationNanos += time.Since(t.startedAt).Nanoseconds()
	t.running = false
}

// Report renders the receiver and its descendants, showing each child's
// share of its parent plus an "other" remainder equal to parent time minus
// the sum of children, per §4.6.
func (t *Timer) Report() string {
	var b strings.Builder
	t.report(&b, 0)
	return b.String()
}

func (t *Timer) report(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s: %s\n", indent, t.Name, time.Duration(t.AccumulatedDurationNanos))

	var childSum int64
	for _, c := range t.Children {
		childSum += c.AccumulatedDurationNanos
		c.report(b, depth+1)
	}
	if len(t.Children) > 0 {
		other := t.AccumulatedDurationNanos - childSum
		if other < 0 {
			other = 0
		}
		fmt.Fprintf(b, "%s  other: %s\n", indent, time.Duration(other))
	}
}
