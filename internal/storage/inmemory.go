package storage

import (
	"fmt"
	"sync"
)

// InMemory implements Store, meant to be used in unit tests in other packages.
type InMemory struct {
	sync.Mutex
	m map[Key]Value
}

var _ Store = (*InMemory)(nil)

func (s *InMemory) Get(k Key) (Value, error) {
	s.Lock()
	defer s.Unlock()
	v, ok := s.m[k]
	if !ok {
		return nil, fmt.Errorf("%q: %w", k, ErrNotFound)
	}
	return v, nil
}

func (s *InMemory) Put(k Key, v Value) error {
	s.Lock()
	defer s.Unlock()
	if s.m == nil {
		s.m = make(map[Key]Value)
	}
	s.m[k] = v
	return nil
}
