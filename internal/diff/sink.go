package diff

// Sink receives the edit script produced by Compare. An error returned by any
// method aborts the comparison; Compare passes it on to its caller.
type Sink[T any] interface {
	// Addition reports an element present only in the new sequence.
	Addition(T) error

	// Deletion reports an element present only in the old sequence.
	Deletion(T) error

	// Equality reports an element present in both sequences at the current
	// alignment point.
	Equality(T) error
}

type Op int

const (
	Equality Op = iota
	Deletion
	Addition
)

// String returns the prefix used by LineSink for the operation, except for
// Equality which is rendered as "=" rather than the empty string.
func (op Op) String() string {
	switch op {
	case Addition:
		return "+"
	case Deletion:
		return "-"
	case Equality:
		return "="
	default:
		return "?"
	}
}

type Event[T any] struct {
	Op    Op
	Value T
}

// Recorder implements Sink by appending every event it receives to Events.
type Recorder[T any] struct {
	Events []Event[T]
}

var _ Sink[string] = (*Recorder[string])(nil)

func (r *Recorder[T]) Addition(v T) error {
	r.Events = append(r.Events, Event[T]{Op: Addition, Value: v})
	return nil
}

func (r *Recorder[T]) Deletion(v T) error {
	r.Events = append(r.Events, Event[T]{Op: Deletion, Value: v})
	return nil
}

func (r *Recorder[T]) Equality(v T) error {
	r.Events = append(r.Events, Event[T]{Op: Equality, Value: v})
	return nil
}
