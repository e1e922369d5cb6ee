package xymq

// node is a single element of a List.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a generic FIFO sequence with O(1) splicing: whole runs of elements
// move between lists by relinking nodes instead of copying values. It is the
// staging and drain sequence used by Queue for batch transfer. The zero
// value is an empty list ready for use.
//
// A List is not safe for concurrent use. The Queue provides the locking; a
// List is always owned by a single goroutine at a time.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	n    int
}

// PushBack appends v to the tail. Complexity: O(1).
func (l *List[T]) PushBack(v T) {
	nd := &node[T]{value: v}
	if l.tail == nil {
		l.head = nd
	} else {
		l.tail.next = nd
	}
	l.tail = nd
	l.n++
}

// PopFront removes and returns the head value.
//
// The second result is false when the list is empty. The vacated node is
// unlinked so the element's storage can be reclaimed. Complexity: O(1).
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	nd := l.head
	l.head = nd.next
	if l.head == nil {
		l.tail = nil
	}
	l.n--
	nd.next = nil
	return nd.value, true
}

// Splice moves every element of src to the tail of l, leaving src empty.
//
// Ownership of the elements transfers without copying them: the nodes are
// relinked in O(1) no matter how many elements move. A nil, empty, or self
// src is a no-op.
func (l *List[T]) Splice(src *List[T]) {
	if src == nil || src.head == nil || src == l {
		return
	}
	if l.tail == nil {
		l.head = src.head
	} else {
		l.tail.next = src.head
	}
	l.tail = src.tail
	l.n += src.n
	src.head = nil
	src.tail = nil
	src.n = 0
}

// Len returns the number of elements currently in the list. Complexity: O(1).
func (l *List[T]) Len() int {
	return l.n
}

// IsEmpty reports whether the list is empty.
func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

// ToSlice returns a copy of the list's contents in FIFO order.
// Complexity: O(n). The list is left unchanged.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.n)
	for nd := l.head; nd != nil; nd = nd.next {
		out = append(out, nd.value)
	}
	return out
}
