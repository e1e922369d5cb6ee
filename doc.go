// Package xymq provides a generic blocking FIFO message queue for handing
// discrete units of work between producer and consumer goroutines.
//
// A Queue pairs mutex-guarded FIFO storage with condition-variable
// wait/notify and a sticky cancellation flag. Producers Push single values,
// variadic batches (PushMany) or whole Lists (PushList); consumers poll with
// TryPop or block in Pop and PopAll until an element or cancellation
// arrives. Cancel is one-shot and terminal: it wakes every blocked consumer
// with ErrCanceled and makes later blocking pops fail fast, which is the
// designed way to end consumer loops during shutdown.
//
// Design notes:
//   - Element construction cost is paid outside the lock: pushes stage a
//     List first and splice it in under the lock, keeping critical sections
//     O(1) under contention.
//   - A push wakes exactly one waiter; Cancel wakes all of them.
//   - Pop takes no timeout and no Context. The queue's own Cancel is the
//     sole unblocking signal; bound a consumer's lifetime by canceling the
//     queue it reads from.
//   - Cancellation wins races: a consumer that observes the flag set fails
//     with ErrCanceled even if elements are queued at that instant, and the
//     flag never resets.
//   - Len, IsEmpty and Canceled are stale-by-return snapshots for
//     diagnostics only, and PopRemaining is an intentionally unsynchronized
//     teardown drain; see their docs for the exact contracts.
//
// Minimal consumer loop and shutdown:
//
//	// consumer
//	for {
//	    msg, err := q.Pop()
//	    if err != nil { // xymq.ErrCanceled
//	        return
//	    }
//	    handle(msg)
//	}
//
//	// during shutdown
//	q.Cancel() // every blocked consumer fails with ErrCanceled
//	wg.Wait()  // join the consumers before touching q unsynchronized
//	var rest xymq.List[Msg]
//	q.PopRemaining(&rest)
package xymq
