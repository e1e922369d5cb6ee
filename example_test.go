package xymq

import (
	"fmt"
)

// Example showing the basic non-blocking FIFO contract.
func Example_basic() {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	for {
		v, ok := q.TryPop()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
}

// Example showing a consumer blocking in Pop until a producer goroutine
// delivers. FIFO order is preserved across the handoff.
func Example_producerConsumer() {
	q := New[string]()
	go func() {
		q.Push("hello")
		q.Push("world")
	}()
	v1, _ := q.Pop()
	v2, _ := q.Pop()
	fmt.Println(v1, v2)
	// Output:
	// hello world
}

// Example showing how Cancel terminates a consumer: blocking pops fail with
// ErrCanceled from then on, even when elements remain queued.
func Example_cancel() {
	q := New[int]()
	q.Push(1)

	v, _ := q.Pop()
	fmt.Println(v)

	q.Cancel()
	q.Push(2) // still enqueued, but no longer handed to blocking pops
	if _, err := q.Pop(); err != nil {
		fmt.Println(err)
	}
	fmt.Println(q.Len())
	// Output:
	// 1
	// xymq: queue canceled
	// 1
}

// Example showing a batch consumer: one PopAll drains everything queued at
// that instant.
func Example_batch() {
	q := New[int]()
	q.PushMany(1, 2, 3)

	var batch List[int]
	if err := q.PopAll(&batch); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(batch.ToSlice(), q.Len())
	// Output:
	// [1 2 3] 0
}

// Example showing ownership transfer with PushMove: the source variable is
// reset to the zero value once the queue owns the element.
func Example_pushMove() {
	q := New[[]string]()
	payload := []string{"a", "b"}
	q.PushMove(&payload)
	fmt.Println(payload == nil)

	v, _ := q.TryPop()
	fmt.Println(v)
	// Output:
	// true
	// [a b]
}

// Example showing the orderly shutdown pattern: cancel, let workers exit,
// then collect leftovers with the unsynchronized drain.
func Example_shutdown() {
	q := New[string]()
	q.PushMany("a", "b", "c")

	v, _ := q.TryPop()
	fmt.Println(v)

	q.Cancel()
	// All workers have observed the cancellation and stopped; the unlocked
	// drain is now valid.
	var rest List[string]
	q.PopRemaining(&rest)
	fmt.Println(rest.ToSlice())
	// Output:
	// a
	// [b c]
}

// Example showing List staging for a bulk push and that splicing empties
// the source.
func ExampleQueue_PushList() {
	q := New[int]()
	var staged List[int]
	staged.PushBack(1)
	staged.PushBack(2)

	q.PushList(&staged)
	fmt.Println(staged.Len(), q.Len())
	// Output:
	// 0 2
}

// Example showing the splice primitive on its own.
func ExampleList_Splice() {
	var a, b List[int]
	a.PushBack(1)
	a.PushBack(2)
	b.PushBack(3)

	a.Splice(&b)
	fmt.Println(a.ToSlice(), b.Len())
	// Output:
	// [1 2 3] 0
}
