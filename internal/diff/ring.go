package diff

// ringBuffer holds the most recent equalities seen outside the context of a
// change. It will happily overwrite values, it won't complain about exceeding
// the size. A zero-sized buffer discards everything.
type ringBuffer[T any] struct {
	values []T
	ridx   int
	widx   int
	len    int
	sz     int
}

func newRingBuffer[T any](sz int) *ringBuffer[T] {
	return &ringBuffer[T]{
		values: make([]T, sz),
		sz:     sz,
	}
}

func (rb *ringBuffer[T]) incr(val int) int {
	return (val + 1) % rb.sz
}

func (rb *ringBuffer[T]) enqueue(v T) {
	if rb.sz == 0 {
		return
	}
	if rb.len == rb.sz {
		rb.ridx = rb.incr(rb.ridx)
	} else {
		rb.len++
	}
	rb.values[rb.widx] = v
	rb.widx = rb.incr(rb.widx)
}

func (rb *ringBuffer[T]) dequeueAll() []T {
	var values []T
	for rb.len > 0 {
		values = append(values, rb.values[rb.ridx])
		rb.ridx = rb.incr(rb.ridx)
		rb.len--
	}
	return values
}
