package domain

// MessageRing is a fixed-size circular buffer holding a room's message log.
// Appending over capacity evicts the oldest entry in O(1).
type MessageRing struct {
	data []Message
	head int // next write position
	size int // current number of elements
	cap  int // maximum capacity
}

// NewMessageRing creates a ring with the given capacity.
func NewMessageRing(capacity int) *MessageRing {
	return &MessageRing{
		data: make([]Message, capacity),
		head: 0,
		size: 0,
		cap:  capacity,
	}
}

// Add appends a message, overwriting the oldest if full.
func (r *MessageRing) Add(msg Message) {
	r.data[r.head] = msg
	r.head = (r.head + 1) % r.cap

	if r.size < r.cap {
		r.size++
	}
}

// All returns the stored messages in arrival order (oldest first).
func (r *MessageRing) All() []Message {
	if r.size == 0 {
		return []Message{}
	}

	result := make([]Message, r.size)

	if r.size < r.cap {
		// Buffer not full yet, elements are at indices 0..size-1
		copy(result, r.data[:r.size])
	} else {
		// Buffer is full, head points to oldest element
		copy(result, r.data[r.head:])
		copy(result[r.cap-r.head:], r.data[:r.head])
	}

	return result
}

// Len returns the current number of elements.
func (r *MessageRing) Len() int {
	return r.size
}
