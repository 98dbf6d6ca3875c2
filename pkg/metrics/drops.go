package metrics

import "sync"

// DropCounter accumulates backpressure drops by priority between
// processing-stats messages. The poller adds; the processor drains one
// batch's worth into each stats message.
type DropCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

// Drops is the process-wide drop accumulator.
var Drops = &DropCounter{counts: map[string]int{}}

// Add records one dropped event of the given priority.
func (d *DropCounter) Add(priority string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.counts[priority]++
}

// Drain returns the accumulated counts and resets them.
func (d *DropCounter) Drain() map[string]int {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.counts
	d.counts = map[string]int{}
	return out
}
