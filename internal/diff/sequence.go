package diff

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is wrapped by Seek when the target index is not addressable.
var ErrOutOfRange = errors.New("index out of range")

// Sequence is an ordered, seekable list of comparable elements. Compare
// rewinds both sequences it is given and owns them until it returns.
type Sequence[T comparable] interface {
	// Rewind moves to the first element, if any.
	Rewind()

	// Valid reports whether there is a current element.
	Valid() bool

	// Current returns the current element. It must only be called if Valid
	// returns true.
	Current() T

	// Next advances to the following element.
	Next()

	// Seek makes the element at index i current. If i is not a valid index,
	// the returned error wraps ErrOutOfRange and the position is unchanged.
	Seek(i int) error
}

// SliceSequence implements Sequence on top of a slice.
type SliceSequence[T comparable] struct {
	items []T
	pos   int
}

var _ Sequence[string] = (*SliceSequence[string])(nil)

func NewSliceSequence[T comparable](items []T) *SliceSequence[T] {
	return &SliceSequence[T]{items: items}
}

func (s *SliceSequence[T]) Rewind() {
	s.pos = 0
}

func (s *SliceSequence[T]) Valid() bool {
	return s.pos >= 0 && s.pos < len(s.items)
}

func (s *SliceSequence[T]) Current() T {
	return s.items[s.pos]
}

func (s *SliceSequence[T]) Next() {
	s.pos++
}

func (s *SliceSequence[T]) Seek(i int) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("seek to %d of %d: %w", i, len(s.items), ErrOutOfRange)
	}
	s.pos = i
	return nil
}

// Lines splits text into lines. A single trailing newline does not create an
// empty last line, so "a\nb\n" and "a\nb" both yield two lines and the empty
// string yields none.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
