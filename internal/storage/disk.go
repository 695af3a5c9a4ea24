package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DiskStore maps keys to files below a directory. Keys use forward slashes
// as separators. With an empty directory, keys are paths as given, relative
// to the working directory unless absolute.
type DiskStore struct {
	dir string
}

var _ Store = (*DiskStore)(nil)

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Get(k Key) (Value, error) {
	b, err := os.ReadFile(s.pathFor(k))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%q: %w", k, ErrNotFound)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// Put writes to a temporary sibling file, then renames it over the target,
// creating missing parent directories.
func (s *DiskStore) Put(k Key, v Value) error {
	p := s.pathFor(k)
	pnew := p + ".new"
	err := os.WriteFile(pnew, v, 0666)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.WithStack(err)
		}
		if err = os.MkdirAll(filepath.Dir(pnew), 0777); err != nil {
			return errors.WithStack(err)
		}
		err = os.WriteFile(pnew, v, 0666)
	}
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.Wrapf(os.Rename(pnew, p), "could not put %v", k)
}

func (s *DiskStore) pathFor(key Key) string {
	return filepath.Join(s.dir, filepath.FromSlash(string(key)))
}
