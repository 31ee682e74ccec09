// Package timer provides the simulation clock and a queue of continuations
// that resume on the main tick once their deadline has passed.
package timer

import (
	"time"

	"github.com/Workiva/go-datastructures/queue"
)

// Func is a scheduled continuation. It receives the clock time at which it runs.
type Func func(now time.Duration)

type item struct {
	due  time.Duration
	seq  uint64
	name string
	fn   Func
}

// Compare orders items by deadline, then by insertion order.
func (i *item) Compare(other queue.Item) int {
	o := other.(*item)
	switch {
	case i.due < o.due:
		return -1
	case i.due > o.due:
		return 1
	case i.seq < o.seq:
		return -1
	case i.seq > o.seq:
		return 1
	}
	return 0
}

// Queue holds pending continuations keyed by absolute clock time.
// It is driven from a single tick and is not meant for concurrent Run calls.
type Queue struct {
	now   time.Duration
	delta time.Duration
	seq   uint64
	pq    *queue.PriorityQueue

	// Step derives time from a tick count since base so a rate that does
	// not divide a second evenly never drifts.
	base  time.Duration
	ticks int64
	rate  int
}

func NewQueue() *Queue {
	return &Queue{pq: queue.NewPriorityQueue(8, true)}
}

// Now returns the current clock time.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Delta returns the length of the last step taken by Advance or Step.
func (q *Queue) Delta() time.Duration {
	return q.delta
}

// Advance moves the clock forward by dt. Negative steps are ignored.
func (q *Queue) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	q.now += dt
	q.delta = dt
	q.base, q.ticks = q.now, 0
}

// Step moves the clock forward by one tick at rate ticks per second. After n
// steps at the same rate the clock reads exactly base + n*time.Second/rate,
// so a delay that is a whole number of ticks comes due on its tick.
func (q *Queue) Step(rate int) {
	if rate <= 0 {
		rate = 60
	}
	if rate != q.rate {
		q.base, q.ticks, q.rate = q.now, 0, rate
	}
	q.ticks++
	next := q.base + time.Duration(q.ticks)*time.Second/time.Duration(rate)
	q.delta = next - q.now
	q.now = next
}

// After schedules fn to run once the clock reaches now+delay.
func (q *Queue) After(delay time.Duration, name string, fn Func) {
	if delay < 0 {
		delay = 0
	}
	q.At(q.now+delay, name, fn)
}

// At schedules fn to run once the clock reaches due.
func (q *Queue) At(due time.Duration, name string, fn Func) {
	if fn == nil {
		return
	}
	q.seq++
	_ = q.pq.Put(&item{due: due, seq: q.seq, name: name, fn: fn})
}

// Len returns the number of pending continuations.
func (q *Queue) Len() int {
	return q.pq.Len()
}

// Pending reports whether a continuation with the given name is queued. It
// walks the whole queue, so it is meant for tests and diagnostics rather than
// the tick.
func (q *Queue) Pending(name string) bool {
	found := false
	q.drainInto(func(it *item) {
		if it.name == name {
			found = true
		}
	})
	return found
}

// Run executes every continuation whose deadline is at or before the current
// clock time, in deadline order. Continuations scheduled while running that
// are already due run in the same call. It returns the names that ran.
func (q *Queue) Run() []string {
	var ran []string
	for {
		next, ok := q.pq.Peek().(*item)
		if !ok || next.due > q.now {
			return ran
		}
		items, err := q.pq.Get(1)
		if err != nil || len(items) == 0 {
			return ran
		}
		it := items[0].(*item)
		ran = append(ran, it.name)
		it.fn(q.now)
	}
}

// drainInto visits every pending item without changing the queue order.
func (q *Queue) drainInto(visit func(*item)) {
	n := q.pq.Len()
	if n == 0 {
		return
	}
	items, err := q.pq.Get(n)
	if err != nil {
		return
	}
	for _, it := range items {
		visit(it.(*item))
	}
	_ = q.pq.Put(items...)
}
