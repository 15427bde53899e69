package scheduler

// Queue is a bounded FIFO of 32-bit words.
type Queue struct {
	items []uint32
	head  int
	size  int
}

// NewQueue returns an empty queue holding up to capacity words.
func NewQueue(capacity int) *Queue {
	return &Queue{items: make([]uint32, capacity)}
}

func (q *Queue) Len() int   { return q.size }
func (q *Queue) Cap() int   { return len(q.items) }
func (q *Queue) Full() bool { return q.size == len(q.items) }

// Push appends v. It reports false when the queue is full.
func (q *Queue) Push(v uint32) bool {
	if q.Full() {
		return false
	}
	q.items[(q.head+q.size)%len(q.items)] = v
	q.size++
	return true
}

// Peek returns the oldest word without removing it.
func (q *Queue) Peek() (uint32, bool) {
	if q.size == 0 {
		return 0, false
	}
	return q.items[q.head], true
}

// Take removes and returns the oldest word.
func (q *Queue) Take() (uint32, bool) {
	v, ok := q.Peek()
	if !ok {
		return 0, false
	}
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return v, true
}
