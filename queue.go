package xymq

import (
	"errors"
	"sync"
)

// ErrCanceled is returned by Pop and PopAll once Cancel has been called on
// the queue.
var ErrCanceled = errors.New("xymq: queue canceled")

// IsCanceled reports whether err is the queue's cancellation error.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Queue is a blocking, concurrency-safe FIFO message queue. Producers hand
// values over with Push, PushMove, PushMany or PushList; consumers poll with
// TryPop or block in Pop and PopAll until an element or cancellation
// arrives. Cancel moves the queue into its terminal canceled state and wakes
// every blocked consumer, which is the designed way to end consumer loops
// during shutdown.
//
// All methods except PopRemaining are safe for concurrent use by multiple
// goroutines. A Queue must not be copied after first use. The zero value is
// not ready for use; construct via New.
type Queue[T any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	items    List[T]
	canceled bool
}

// New creates a new message queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends v to the tail and wakes one blocked consumer.
//
// The node holding v is built before the lock is taken, so the critical
// section is a constant-time splice however expensive v is to construct.
// Pushing is legal at any time, including after Cancel: the element is still
// enqueued, but blocked consumers keep failing with ErrCanceled.
func (q *Queue[T]) Push(v T) {
	var staged List[T]
	staged.PushBack(v)
	q.pushList(&staged)
}

// PushMove appends *ref to the tail, transferring ownership: *ref is reset
// to the zero value of T before PushMove returns.
//
// Use it instead of Push when T holds references (slices, maps, pointers)
// the caller must not keep reaching through after handing the value over.
// Otherwise identical to Push.
func (q *Queue[T]) PushMove(ref *T) {
	var staged List[T]
	var zero T
	staged.PushBack(*ref)
	*ref = zero
	q.pushList(&staged)
}

// PushMany appends items in order under a single lock acquisition and wakes
// one blocked consumer for the whole batch.
//
// The staging list is built outside the lock; the critical section is a
// single splice.
func (q *Queue[T]) PushMany(items ...T) {
	var staged List[T]
	for _, v := range items {
		staged.PushBack(v)
	}
	q.pushList(&staged)
}

// PushList splices the entire contents of src onto the tail under a single
// lock acquisition and wakes one blocked consumer.
//
// Ownership of every element transfers to the queue and src is left empty.
// The splice is O(1) regardless of src's length, which makes PushList the
// cheapest way to hand over a large batch.
func (q *Queue[T]) PushList(src *List[T]) {
	q.pushList(src)
}

// pushList splices staged onto the tail under the lock and signals one
// waiter. The signal is unconditional: splicing an empty list still wakes a
// consumer, which re-checks the predicate and goes back to sleep.
func (q *Queue[T]) pushList(staged *List[T]) {
	q.mu.Lock()
	q.items.Splice(staged)
	q.cond.Signal()
	q.mu.Unlock()
}

// TryPop removes and returns the head value without blocking.
//
// The second result is false when the queue is empty. TryPop never fails
// with ErrCanceled: elements still queued on a canceled queue remain
// retrievable this way.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	v, ok = q.items.PopFront()
	q.mu.Unlock()
	return
}

// Pop removes and returns the head value, blocking until one is available
// or the queue is canceled.
//
// The wait has no timeout: Pop returns only once a producer pushes or
// Cancel is called, in which case it returns the zero value and
// ErrCanceled. Cancellation takes priority: a consumer that observes the
// flag set fails even if elements are queued at that moment.
func (q *Queue[T]) Pop() (T, error) {
	q.mu.Lock()
	// Wait releases the lock while blocked and re-acquires it on wake; the
	// loop re-checks the predicate every time since another consumer may
	// have taken the element first.
	for q.items.IsEmpty() && !q.canceled {
		q.cond.Wait()
	}
	if q.canceled {
		q.mu.Unlock()
		var zero T
		return zero, ErrCanceled
	}
	v, _ := q.items.PopFront()
	q.mu.Unlock()
	return v, nil
}

// PopAll blocks exactly like Pop, then splices every element available at
// that instant onto the tail of dst in one atomic step.
//
// Elements are appended after anything dst already holds, so a consumer can
// accumulate batches across calls. On cancellation PopAll returns
// ErrCanceled and dst is left unchanged. Draining in batches amortizes lock
// traffic for consumers able to process more than one message per wake-up.
func (q *Queue[T]) PopAll(dst *List[T]) error {
	q.mu.Lock()
	for q.items.IsEmpty() && !q.canceled {
		q.cond.Wait()
	}
	if q.canceled {
		q.mu.Unlock()
		return ErrCanceled
	}
	dst.Splice(&q.items)
	q.mu.Unlock()
	return nil
}

// PopRemaining splices everything still queued onto the tail of dst without
// taking the lock.
//
// This is deliberately unsynchronized. It is valid only once no other
// goroutine can touch the queue anymore; the intended use is orderly
// teardown after Cancel, when every producer and consumer has already
// observed the cancellation and stopped. Calling it concurrently with any
// other method is a data race. Within its contract it never blocks and
// never contends with the lock, and teardown code may rely on that.
func (q *Queue[T]) PopRemaining(dst *List[T]) {
	dst.Splice(&q.items)
}

// Cancel moves the queue into its terminal canceled state and wakes all
// blocked consumers, which fail with ErrCanceled.
//
// Cancel is idempotent and cannot be undone. It is the queue's teardown
// signal: Pop has no timeout, so a queue abandoned with consumers still
// blocked keeps those goroutines alive until Cancel is called. Producers
// may keep pushing afterwards; the elements are enqueued but no longer
// handed to blocking consumers.
func (q *Queue[T]) Cancel() {
	q.mu.Lock()
	q.canceled = true
	q.cond.Broadcast()
	q.mu.Unlock()
}

// Canceled reports whether Cancel has been called.
//
// The answer is a snapshot: false may be stale by the time the caller acts
// on it. true is definitive, since the flag never resets.
func (q *Queue[T]) Canceled() bool {
	q.mu.Lock()
	c := q.canceled
	q.mu.Unlock()
	return c
}

// Len returns the number of elements currently queued.
//
// The value is advisory: other goroutines may push or pop concurrently, so
// it can be stale the instant Len returns. Use TryPop or Pop, whose answers
// are authoritative, rather than deciding anything from Len without
// external synchronization.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	n := q.items.Len()
	q.mu.Unlock()
	return n
}

// IsEmpty reports whether the queue is empty. The same advisory caveat as
// Len applies.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
