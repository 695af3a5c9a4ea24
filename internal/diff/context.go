package diff

// ContextSink forwards all additions and deletions to the wrapped sink, but
// only up to n equalities before and after each of them. Other equalities are
// dropped.
type ContextSink[T any] struct {
	sink Sink[T]

	// Equalities that happened since the last change and may still be needed
	// as leading context for the next one.
	common *ringBuffer[T]

	// How many more equalities to forward as trailing context of the last
	// change.
	trailing int

	n int
}

var _ Sink[string] = (*ContextSink[string])(nil)

// WithContext decorates sink so that at most n equalities surround each
// change. A negative n means all equalities are kept, in which case sink is
// returned as is.
func WithContext[T any](sink Sink[T], n int) Sink[T] {
	if n < 0 {
		return sink
	}
	return &ContextSink[T]{
		sink:   sink,
		common: newRingBuffer[T](n),
		n:      n,
	}
}

func (s *ContextSink[T]) Addition(v T) error {
	if err := s.backfill(); err != nil {
		return err
	}
	return s.sink.Addition(v)
}

func (s *ContextSink[T]) Deletion(v T) error {
	if err := s.backfill(); err != nil {
		return err
	}
	return s.sink.Deletion(v)
}

func (s *ContextSink[T]) Equality(v T) error {
	if s.trailing > 0 {
		s.trailing--
		return s.sink.Equality(v)
	}
	s.common.enqueue(v)
	return nil
}

// backfill emits the leading context of a change and rearms the trailing
// context.
func (s *ContextSink[T]) backfill() error {
	for _, v := range s.common.dequeueAll() {
		if err := s.sink.Equality(v); err != nil {
			return err
		}
	}
	s.trailing = s.n
	return nil
}
