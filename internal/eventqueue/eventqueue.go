// Package eventqueue implements the deduplicated FIFO of pending
// combinational callbacks described in SPEC_FULL.md §4.C.
package eventqueue

import "github.com/sarchlab/rtlsim/internal/rtlerr"

// Callback is the signature every registered combinational block and
// every synthetic slice-bridge block exposes to the queue. A non-nil
// return is a runtime hardware-described failure (a mis-widthed write,
// a write to a non-sequential destination), not programmer misuse of
// the registration API, so it is returned rather than panicked.
type Callback func() error

type entry struct {
	id rtlerr.BlockID
	cb Callback
}

// Queue is a deduplicated FIFO keyed by block id. It is not safe for
// concurrent use; the Cycle Engine that owns it runs single-threaded per
// SPEC_FULL.md §5.
type Queue struct {
	fifo    []entry
	present []bool
	nextID  rtlerr.BlockID
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// NextID allocates a fresh monotonic block id, growing the presence
// bitmap as needed. Ids are dense starting at 0.
func (q *Queue) NextID() rtlerr.BlockID {
	id := q.nextID
	q.nextID++
	q.present = append(q.present, false)
	return id
}

// Enq pushes cb for id onto the queue unless id is already pending, in
// which case it is a no-op. Matches push-front + pop-from-back FIFO
// ordering: Enq appends to the tail, Deq pops from the head.
func (q *Queue) Enq(id rtlerr.BlockID, cb Callback) {
	if q.present[id] {
		return
	}
	q.present[id] = true
	q.fifo = append(q.fifo, entry{id: id, cb: cb})
}

// Deq pops the oldest pending callback. Returns ok=false if the queue is
// empty.
func (q *Queue) Deq() (cb Callback, id rtlerr.BlockID, ok bool) {
	if len(q.fifo) == 0 {
		return nil, 0, false
	}

	e := q.fifo[0]
	q.fifo = q.fifo[1:]
	q.present[e.id] = false

	return e.cb, e.id, true
}

// Len reports the number of pending callbacks.
func (q *Queue) Len() int {
	return len(q.fifo)
}

// Pending reports whether id currently has a callback enqueued. Exercised
// by the re-enqueue and growth tests in eventqueue_test.go.
func (q *Queue) Pending(id rtlerr.BlockID) bool {
	return q.present[id]
}
