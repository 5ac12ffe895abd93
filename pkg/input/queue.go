package input

// Queue is a fixed size ring of key events.
// Push never blocks, when the ring is full the oldest unread
// event is overwritten.
type Queue struct {
	buf     []Event
	r, w    int
	n       int
	dropped uint64
}

const DefaultQueueSize = 16

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{buf: make([]Event, size)}
}

// Push adds e to the end of the queue.
// Returns true if some unread event was lost.
func (q *Queue) Push(e Event) (overwritten bool) {
	q.buf[q.w] = e
	q.w = (q.w + 1) % len(q.buf)
	if q.n == len(q.buf) {
		q.r = q.w
		q.dropped++
		return true
	}
	q.n++
	return false
}

// Pop returns the oldest unread event.
func (q *Queue) Pop() (Event, bool) {
	if q.n == 0 {
		return Event{}, false
	}
	e := q.buf[q.r]
	q.r = (q.r + 1) % len(q.buf)
	q.n--
	return e, true
}

func (q *Queue) Len() int        { return q.n }
func (q *Queue) Cap() int        { return len(q.buf) }
func (q *Queue) Dropped() uint64 { return q.dropped }
