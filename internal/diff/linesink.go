package diff

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LineSink writes one line per event: "+value" for additions, "-value" for
// deletions, and the bare value for equalities. Values are formatted with %v.
// Output is buffered; call Close to flush it.
type LineSink[T any] struct {
	w *bufio.Writer

	// Only set if the sink opened the file itself.
	f *os.File
}

var _ Sink[string] = (*LineSink[string])(nil)

func NewLineSink[T any](w io.Writer) *LineSink[T] {
	return &LineSink[T]{w: bufio.NewWriter(w)}
}

// NewFileSink opens the named file for appending, creating it if necessary.
// The file is closed by Close.
func NewFileSink[T any](name string) (*LineSink[T], error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return nil, err
	}
	return &LineSink[T]{w: bufio.NewWriter(f), f: f}, nil
}

func (s *LineSink[T]) Addition(v T) error {
	_, err := fmt.Fprintf(s.w, "+%v\n", v)
	return err
}

func (s *LineSink[T]) Deletion(v T) error {
	_, err := fmt.Fprintf(s.w, "-%v\n", v)
	return err
}

func (s *LineSink[T]) Equality(v T) error {
	_, err := fmt.Fprintf(s.w, "%v\n", v)
	return err
}

// Close flushes buffered output. If the sink owns a file, the file is closed
// even if flushing fails.
func (s *LineSink[T]) Close() error {
	err := s.w.Flush()
	if s.f != nil {
		if cerr := s.f.Close(); err == nil {
			err = cerr
		}
		s.f = nil
	}
	return err
}
